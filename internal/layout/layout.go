// Package layout renders rows of plain-text cells into a box-drawn table.
//
// All widths are computed from display width (wide and combining runes
// handled by go-runewidth), never from byte length. Alongside the rendered
// lines the table records where each cell's text sits, so styling can be
// added afterwards without searching the text.
package layout

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Border glyphs.
const (
	topLeft     = "┌"
	topMid      = "┬"
	topRight    = "┐"
	midLeft     = "├"
	midMid      = "┼"
	midRight    = "┤"
	bottomLeft  = "└"
	bottomMid   = "┴"
	bottomRight = "┘"
	vertical    = "│"
	horizontal  = "─"
)

// cellPadding is the number of spaces on each side of a cell.
const cellPadding = 1

// width uses a fixed condition so ambiguous-width runes do not depend on the
// user's locale environment.
var width = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Row is one table row of plain-text cells.
type Row []string

// Bounds locates a cell's content inside Table.Lines[Line] as the byte range
// [Start, End). The range covers the cell text only, not its padding.
type Bounds struct {
	Line  int
	Start int
	End   int
}

// Table is a rendered, unstyled table.
type Table struct {
	// Lines are the rendered lines without trailing newlines.
	Lines []string
	// Widths holds the display width of each column's content area.
	Widths []int
	// Header locates each header cell.
	Header []Bounds
	// Cells locates each body cell: Cells[row][col].
	Cells [][]Bounds
}

// StringWidth returns the terminal display width of s.
func StringWidth(s string) int {
	return width.StringWidth(s)
}

// Render lays out headers and rows. Missing cells render empty and extra
// cells beyond len(headers) are dropped. An empty rows slice produces a
// header-only table.
func Render(headers []string, rows []Row) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	t := &Table{
		Widths: widths,
		Cells:  make([][]Bounds, 0, len(rows)),
	}

	t.Lines = append(t.Lines, border(widths, topLeft, topMid, topRight))

	headerLine, headerBounds := renderRow(headers, widths, len(t.Lines))
	t.Lines = append(t.Lines, headerLine)
	t.Header = headerBounds

	if len(rows) > 0 {
		t.Lines = append(t.Lines, border(widths, midLeft, midMid, midRight))
	}
	for _, row := range rows {
		line, bounds := renderRow(row, widths, len(t.Lines))
		t.Lines = append(t.Lines, line)
		t.Cells = append(t.Cells, bounds)
	}

	t.Lines = append(t.Lines, border(widths, bottomLeft, bottomMid, bottomRight))
	return t
}

// String joins the rendered lines with newlines.
func (t *Table) String() string {
	return strings.Join(t.Lines, "\n")
}

// Verify checks that every line has the same display width and that every
// recorded cell range still holds text no wider than its column. A failure
// means the layout itself is broken, never bad input.
func (t *Table) Verify() error {
	if len(t.Lines) == 0 {
		return nil
	}
	want := StringWidth(t.Lines[0])
	for i, line := range t.Lines {
		if got := StringWidth(line); got != want {
			return fmt.Errorf("layout invariant violated: line %d is %d cells wide, want %d", i, got, want)
		}
	}
	for r, row := range t.Cells {
		for c, b := range row {
			if b.Start < 0 || b.End < b.Start || b.End > len(t.Lines[b.Line]) {
				return fmt.Errorf("layout invariant violated: cell %d/%d bounds %v out of range", r, c, b)
			}
			if w := StringWidth(t.Lines[b.Line][b.Start:b.End]); w > t.Widths[c] {
				return fmt.Errorf("layout invariant violated: cell %d/%d is %d wide, column is %d", r, c, w, t.Widths[c])
			}
		}
	}
	return nil
}

func border(widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat(horizontal, w+2*cellPadding))
	}
	b.WriteString(right)
	return b.String()
}

func renderRow(cells []string, widths []int, lineNo int) (string, []Bounds) {
	var b strings.Builder
	bounds := make([]Bounds, len(widths))
	pad := strings.Repeat(" ", cellPadding)

	b.WriteString(vertical)
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(pad)
		start := b.Len()
		b.WriteString(cell)
		bounds[i] = Bounds{Line: lineNo, Start: start, End: b.Len()}
		b.WriteString(strings.Repeat(" ", w-StringWidth(cell)))
		b.WriteString(pad)
		b.WriteString(vertical)
	}
	return b.String(), bounds
}
