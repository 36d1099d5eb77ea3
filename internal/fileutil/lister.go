package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/harrison/fls/internal/models"
)

// Logger is the subset of the console logger used while reading directories.
type Logger interface {
	LogDebug(message string)
}

// Lister reads one directory level into FileEntry records.
type Lister interface {
	ReadDir(path string, showHidden bool) (*Listing, error)
}

// Listing is the result of reading one directory.
type Listing struct {
	// Entries holds every entry whose metadata was read, in directory order.
	Entries []models.FileEntry
	// Errors holds non-fatal per-entry failures (*EntryError) and partial
	// read errors. Entries listed here are not in Entries.
	Errors []error
}

// Options configures an OSLister.
type Options struct {
	// CountItems fills FileEntry.Items for directories (one extra read per directory).
	CountItems bool
	// Logger receives debug messages about skipped entries. May be nil.
	Logger Logger
}

// OSLister reads directories from the local filesystem.
type OSLister struct {
	opts   Options
	owners *ownerCache
}

// NewLister creates an OSLister with its own owner/group name cache.
func NewLister(opts Options) *OSLister {
	return &OSLister{
		opts:   opts,
		owners: newOwnerCache(),
	}
}

// ReadDir lists dir. Hidden entries are skipped unless showHidden is set.
// Only a failure to open or list dir itself is returned as an error.
func (l *OSLister) ReadDir(dir string, showHidden bool) (*Listing, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &RootUnreadableError{Path: dir, Err: err}
	}
	defer f.Close()

	dirEntries, err := f.ReadDir(-1)
	result := &Listing{
		Entries: make([]models.FileEntry, 0, len(dirEntries)),
	}
	if err != nil && !errors.Is(err, io.EOF) {
		if len(dirEntries) == 0 {
			return nil, &RootUnreadableError{Path: dir, Err: err}
		}
		// Partial listing: keep what was read.
		result.Errors = append(result.Errors, fmt.Errorf("partial read of %s: %w", dir, err))
		l.debug(fmt.Sprintf("partial read of %s: %v", dir, err))
	}

	for _, de := range dirEntries {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Lstat(path)
		if err != nil {
			result.Errors = append(result.Errors, &EntryError{Name: name, Err: err})
			l.debug(fmt.Sprintf("skipping %s: %v", path, err))
			continue
		}

		entry := l.newEntry(name, path, info)
		if entry.Kind == models.KindDirectory && l.opts.CountItems {
			entry.Items = countItems(path, showHidden)
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// Stat builds the entry for a single path, e.g. the root of a tree.
func (l *OSLister) Stat(path string) (models.FileEntry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return models.FileEntry{}, &EntryError{Name: path, Err: err}
	}
	return l.newEntry(filepath.Base(path), path, info), nil
}

func (l *OSLister) newEntry(name, path string, info fs.FileInfo) models.FileEntry {
	owner, group := l.owners.resolve(info)
	return models.FileEntry{
		Name:    name,
		Path:    path,
		Kind:    Classify(info.Mode()),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Owner:   owner,
		Group:   group,
		Mode:    Permissions(info.Mode()),
	}
}

func (l *OSLister) debug(message string) {
	if l.opts.Logger != nil {
		l.opts.Logger.LogDebug(message)
	}
}

// Classify maps link-aware file mode bits to an entry kind.
// The mode must come from Lstat: a symlink is KindSymlink whatever it points at.
func Classify(m fs.FileMode) models.Kind {
	switch {
	case m&fs.ModeSymlink != 0:
		return models.KindSymlink
	case m.IsDir():
		return models.KindDirectory
	case m.IsRegular():
		if m.Perm()&0o111 != 0 {
			return models.KindExecutable
		}
		return models.KindFile
	default:
		return models.KindOther
	}
}

// Permissions converts Go's file mode into a Unix permission word.
func Permissions(m fs.FileMode) models.Permissions {
	p := models.Permissions(m.Perm())
	if m&fs.ModeSetuid != 0 {
		p |= models.PermSetuid
	}
	if m&fs.ModeSetgid != 0 {
		p |= models.PermSetgid
	}
	if m&fs.ModeSticky != 0 {
		p |= models.PermSticky
	}
	return p
}

func countItems(dir string, showHidden bool) models.ItemCount {
	f, err := os.Open(dir)
	if err != nil {
		return models.ItemCount{Unreadable: true}
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil && len(names) == 0 {
		return models.ItemCount{Unreadable: true}
	}

	count := 0
	for _, name := range names {
		if showHidden || !strings.HasPrefix(name, ".") {
			count++
		}
	}
	return models.ItemCount{Count: count, Valid: true}
}

// SortEntries orders entries by case-folded name, breaking ties by byte order
// so the result is total and deterministic. Folding case is intended: it
// lists "a.txt", "b.txt", "Z" in that order, where a plain byte sort would
// put "Z" first.
func SortEntries(entries []models.FileEntry) {
	slices.SortFunc(entries, func(a, b models.FileEntry) int {
		return CompareNames(a.Name, b.Name)
	})
}

// CompareNames is the name ordering used by every listing mode.
func CompareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
