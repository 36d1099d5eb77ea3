// Package tree walks a directory hierarchy and streams one rendered line per
// entry, in the style of the Unix tree command.
//
// No tree structure is built. The walk keeps only the call stack, the
// current depth and the prefix string of continuation glyphs, and produces
// lines lazily through an iter.Seq.
package tree

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/harrison/fls/internal/fileutil"
	"github.com/harrison/fls/internal/models"
	"github.com/harrison/fls/internal/style"
)

// Branch glyphs.
const (
	GlyphBranch   = "├── "
	GlyphLast     = "└── "
	GlyphVertical = "│   "
	GlyphBlank    = "    "
)

// Unlimited as a MaxDepth walks as deep as the ceiling allows.
const Unlimited = 0

// DefaultCeiling is the hard depth limit applied to every walk, whatever the
// configured MaxDepth. It guarantees termination on cyclic mounts.
const DefaultCeiling = 20

// Logger receives messages about subtrees that could not be read.
type Logger interface {
	LogDebug(message string)
}

// Config selects what the walk shows.
type Config struct {
	ShowHidden  bool
	MaxDepth    int // Unlimited, or the deepest level to list (root children are depth 1)
	Interactive bool
}

// Line is one emitted entry.
type Line struct {
	Entry  models.FileEntry
	Depth  int
	IsLast bool
	// Prefix is the ancestor continuation glyphs followed by this entry's branch glyph.
	Prefix string
	// Text is Prefix followed by the styled entry name.
	Text string
}

// Walker streams tree lines for a root directory.
type Walker struct {
	Lister fileutil.Lister
	Scheme *style.Scheme
	Config Config
	// Ceiling overrides DefaultCeiling when positive.
	Ceiling int
	Logger  Logger
}

// New creates a Walker with the default ceiling.
func New(lister fileutil.Lister, scheme *style.Scheme, cfg Config) *Walker {
	if scheme == nil {
		scheme = style.Plain()
	}
	return &Walker{
		Lister:  lister,
		Scheme:  scheme,
		Config:  cfg,
		Ceiling: DefaultCeiling,
	}
}

// Limit returns the effective depth bound: MaxDepth clamped to the ceiling,
// with Unlimited mapped to the ceiling. A negative MaxDepth yields 0.
func (w *Walker) Limit() int {
	ceiling := w.Ceiling
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	switch {
	case w.Config.MaxDepth == Unlimited:
		return ceiling
	case w.Config.MaxDepth < 0:
		return 0
	case w.Config.MaxDepth > ceiling:
		return ceiling
	default:
		return w.Config.MaxDepth
	}
}

// Walk reads root and returns the sequence of lines below it. Only a failure
// to list root is returned (as *fileutil.RootUnreadableError); unreadable
// subdirectories are shown with no children and the walk continues.
//
// Subdirectories are read as the sequence is consumed, and the walk stops as
// soon as the consumer stops.
func (w *Walker) Walk(root string) (iter.Seq[Line], error) {
	entries, err := w.read(root)
	if err != nil {
		var rootErr *fileutil.RootUnreadableError
		if !errors.As(err, &rootErr) {
			err = &fileutil.RootUnreadableError{Path: root, Err: err}
		}
		return nil, err
	}

	limit := w.Limit()
	return func(yield func(Line) bool) {
		if limit < 1 {
			return
		}
		w.walk(entries, "", 1, limit, yield)
	}, nil
}

// walk emits entries at depth and recurses into directories while depth < limit.
// It returns false once the consumer has asked to stop.
func (w *Walker) walk(entries []models.FileEntry, prefix string, depth, limit int, yield func(Line) bool) bool {
	for i, e := range entries {
		isLast := i == len(entries)-1
		glyph, continuation := GlyphBranch, GlyphVertical
		if isLast {
			glyph, continuation = GlyphLast, GlyphBlank
		}

		line := Line{
			Entry:  e,
			Depth:  depth,
			IsLast: isLast,
			Prefix: prefix + glyph,
		}
		line.Text = line.Prefix + w.Scheme.Styled(e, w.Config.Interactive)
		if !yield(line) {
			return false
		}

		if e.Kind != models.KindDirectory || depth >= limit {
			continue
		}
		children, err := w.read(e.Path)
		if err != nil {
			w.debug(fmt.Sprintf("skipping contents of %s: %v", e.Path, err))
			continue
		}
		if !w.walk(children, prefix+continuation, depth+1, limit, yield) {
			return false
		}
	}
	return true
}

// read lists dir, drops hidden entries unless configured, and sorts by name.
func (w *Walker) read(dir string) ([]models.FileEntry, error) {
	listing, err := w.Lister.ReadDir(dir, w.Config.ShowHidden)
	if err != nil {
		return nil, err
	}
	for _, entryErr := range listing.Errors {
		w.debug(entryErr.Error())
	}

	entries := slices.Clone(listing.Entries)
	if !w.Config.ShowHidden {
		entries = slices.DeleteFunc(entries, models.FileEntry.IsHidden)
	}
	fileutil.SortEntries(entries)
	return entries, nil
}

func (w *Walker) debug(message string) {
	if w.Logger != nil {
		w.Logger.LogDebug(message)
	}
}

// PlainText renders a line without any styling, for comparisons and logs.
func (l Line) PlainText() string {
	return l.Prefix + l.Entry.DisplayName()
}
