package style

import (
	"slices"

	"github.com/harrison/fls/internal/layout"
	"github.com/harrison/fls/internal/models"
)

// Span asks for one body cell of a table to be decorated.
type Span struct {
	Row       int
	Col       int
	Directive Directive
}

// Apply returns the table's lines with every span's directive wrapped around
// its cell content. Offsets come from the table's recorded cell bounds and are
// applied back-to-front per row, so no insertion shifts a later one.
//
// Spans with an unknown row or column, or with a zero directive, are ignored.
// When several spans target the same cell the last one wins. Lines without a
// span are returned unchanged.
func Apply(t *layout.Table, spans []Span) []string {
	lines := slices.Clone(t.Lines)

	byRow := make(map[int]map[int]Span)
	for _, s := range spans {
		if s.Directive.IsZero() || s.Row < 0 || s.Row >= len(t.Cells) {
			continue
		}
		if s.Col < 0 || s.Col >= len(t.Cells[s.Row]) {
			continue
		}
		if byRow[s.Row] == nil {
			byRow[s.Row] = make(map[int]Span)
		}
		byRow[s.Row][s.Col] = s
	}

	for row, cols := range byRow {
		ordered := make([]Span, 0, len(cols))
		for _, s := range cols {
			ordered = append(ordered, s)
		}
		// Right-most cell first.
		slices.SortFunc(ordered, func(a, b Span) int {
			return t.Cells[row][b.Col].Start - t.Cells[row][a.Col].Start
		})

		lineNo := t.Cells[row][0].Line
		line := t.Lines[lineNo]
		for _, s := range ordered {
			b := t.Cells[row][s.Col]
			line = line[:b.Start] + s.Directive.Wrap(line[b.Start:b.End]) + line[b.End:]
		}
		lines[lineNo] = line
	}

	return lines
}

// Columns names the table columns that carry styling.
type Columns struct {
	Name int
	Size int
}

// SpansFor computes the spans for one entry rendered at row. Decisions depend
// only on the entry's kind, hidden flag and size, never on rendered text.
func (s *Scheme) SpansFor(row int, e models.FileEntry, cols Columns, links bool) []Span {
	var spans []Span
	if d := s.NameDirective(e, links); !d.IsZero() {
		spans = append(spans, Span{Row: row, Col: cols.Name, Directive: d})
	}
	if c := s.SizeColor(e.Size); c != nil {
		spans = append(spans, Span{Row: row, Col: cols.Size, Directive: Directive{Color: c}})
	}
	return spans
}
