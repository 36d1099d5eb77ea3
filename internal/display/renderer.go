package display

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/harrison/fls/internal/fileutil"
	"github.com/harrison/fls/internal/format"
	"github.com/harrison/fls/internal/models"
	"github.com/harrison/fls/internal/style"
)

// Logger receives diagnostics produced while rendering.
type Logger interface {
	LogDebug(message string)
}

// Options selects the view and what it shows.
type Options struct {
	ShowHidden   bool
	Long         bool
	Tree         bool
	JSON         bool
	Interactive  bool // wrap names in file:// hyperlinks
	RelativeTime bool
	Depth        int // tree depth, tree.Unlimited for the ceiling

	// Now is the reference time for relative timestamps (zero = time.Now).
	Now time.Time
}

// Mode is the view a Renderer produces.
type Mode int

const (
	ModeSimple Mode = iota
	ModeTable
	ModeTree
	ModeJSON
)

// String returns the mode name used in log messages.
func (m Mode) String() string {
	switch m {
	case ModeTable:
		return "table"
	case ModeTree:
		return "tree"
	case ModeJSON:
		return "json"
	default:
		return "simple"
	}
}

// Renderer writes one directory in the view chosen by Options.
type Renderer struct {
	Out     io.Writer
	Err     io.Writer // warnings; nil discards them
	Lister  fileutil.Lister
	Scheme  *style.Scheme // nil renders plain text
	Options Options
	Logger  Logger
}

// Mode returns the view Render will produce: JSON, then tree, then table,
// then simple.
func (r *Renderer) Mode() Mode {
	switch {
	case r.Options.JSON:
		return ModeJSON
	case r.Options.Tree:
		return ModeTree
	case r.Options.Long:
		return ModeTable
	default:
		return ModeSimple
	}
}

// Render lists path and writes it to Out. The only error returned is a
// *fileutil.RootUnreadableError for a path that cannot be listed, or an
// encoding failure in JSON mode.
func (r *Renderer) Render(path string) error {
	mode := r.Mode()
	r.debug(fmt.Sprintf("rendering %s as %s", path, mode))

	switch mode {
	case ModeJSON:
		return r.renderJSON(path)
	case ModeTree:
		return r.renderTree(path)
	case ModeTable:
		return r.renderTable(path)
	default:
		return r.renderSimple(path)
	}
}

func (r *Renderer) renderSimple(path string) error {
	entries, err := r.list(path)
	if err != nil {
		return err
	}
	scheme := r.scheme()
	for _, e := range entries {
		fmt.Fprintln(r.Out, scheme.Styled(e, r.Options.Interactive))
	}
	return nil
}

// list reads path, reports unreadable entries, and returns the visible
// entries sorted by name.
func (r *Renderer) list(path string) ([]models.FileEntry, error) {
	listing, err := r.Lister.ReadDir(path, r.Options.ShowHidden)
	if err != nil {
		return nil, err
	}
	if len(listing.Errors) > 0 && r.Err != nil {
		WarnUnreadableEntries(path, listing.Errors).Display(r.Err, r.colored())
	}

	entries := slices.Clone(listing.Entries)
	if !r.Options.ShowHidden {
		entries = slices.DeleteFunc(entries, models.FileEntry.IsHidden)
	}
	fileutil.SortEntries(entries)
	return entries, nil
}

func (r *Renderer) scheme() *style.Scheme {
	if r.Scheme == nil {
		return style.Plain()
	}
	return r.Scheme
}

// colored reports whether the scheme emits escape sequences.
func (r *Renderer) colored() bool {
	return r.Scheme != nil && r.Scheme.Enabled
}

func (r *Renderer) formatOptions() format.Options {
	return format.Options{RelativeTime: r.Options.RelativeTime, Now: r.Options.Now}
}

func (r *Renderer) debug(message string) {
	if r.Logger != nil {
		r.Logger.LogDebug(message)
	}
}
