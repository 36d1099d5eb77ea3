package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/harrison/fls/internal/models"
	"github.com/harrison/fls/internal/style"
	"github.com/harrison/fls/internal/tree"
)

func (r *Renderer) renderTree(path string) error {
	w := tree.New(r.Lister, r.scheme(), tree.Config{
		ShowHidden:  r.Options.ShowHidden,
		MaxDepth:    r.Options.Depth,
		Interactive: r.Options.Interactive,
	})
	if r.Logger != nil {
		w.Logger = r.Logger
	}

	lines, err := w.Walk(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.Out, r.rootLine(path))

	var dirs, files int
	for line := range lines {
		if line.Entry.IsDir() {
			dirs++
		} else {
			files++
		}
		fmt.Fprintln(r.Out, line.Text)
	}

	fmt.Fprintf(r.Out, "\n%s, %s\n", plural(dirs, "directory", "directories"), plural(files, "file", "files"))
	r.debug(fmt.Sprintf("walked %s to depth %d", path, w.Limit()))
	return nil
}

// rootLine renders path as given, styled as a directory.
func (r *Renderer) rootLine(path string) string {
	root := models.FileEntry{Name: path, Path: path, Kind: models.KindDirectory}
	d := style.Directive{Color: r.scheme().Directory}
	if r.Options.Interactive {
		d.Link = style.Hyperlink(path)
	}
	return d.Wrap(root.DisplayName())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return humanize.Comma(int64(n)) + " " + many
}
