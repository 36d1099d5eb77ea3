package display

import (
	"fmt"

	"github.com/harrison/fls/internal/format"
	"github.com/harrison/fls/internal/layout"
	"github.com/harrison/fls/internal/style"
)

var tableColumns = style.Columns{Name: format.ColName, Size: format.ColSize}

func (r *Renderer) renderTable(path string) error {
	entries, err := r.list(path)
	if err != nil {
		return err
	}

	opts := r.formatOptions()
	scheme := r.scheme()
	rows := make([]layout.Row, 0, len(entries))
	var spans []style.Span
	for i, e := range entries {
		rows = append(rows, format.Cells(e, opts))
		spans = append(spans, scheme.SpansFor(i, e, tableColumns, r.Options.Interactive)...)
	}

	table := layout.Render(format.Headers, rows)
	if err := table.Verify(); err != nil {
		// Never expected; the plain table is still printable.
		r.debug(fmt.Sprintf("layout check failed for %s: %v", path, err))
	}

	for _, line := range style.Apply(table, spans) {
		fmt.Fprintln(r.Out, line)
	}
	return nil
}
