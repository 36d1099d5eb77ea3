package models

import (
	"strconv"
	"strings"
	"time"
)

// Kind classifies a directory entry from link-aware (non-following) metadata.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindExecutable
	KindSymlink
	KindOther
)

// String returns the label shown in the Type column.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDirectory:
		return "Directory"
	case KindExecutable:
		return "Executable"
	case KindSymlink:
		return "Symlink"
	default:
		return "Other"
	}
}

// Permissions is a Unix permission word: nine rwx bits plus setuid, setgid and sticky.
type Permissions uint32

// Special permission bits, laid out as in the st_mode word.
const (
	PermSetuid Permissions = 0o4000
	PermSetgid Permissions = 0o2000
	PermSticky Permissions = 0o1000
)

// Class selects the owner, group or other triplet of a permission word.
type Class uint

const (
	ClassUser Class = iota
	ClassGroup
	ClassOther
)

// Bits returns the three rwx bits for the class (read=4, write=2, execute=1).
func (p Permissions) Bits(c Class) uint32 {
	shift := 6 - 3*uint(c)
	return uint32(p>>shift) & 0o7
}

// Special reports whether the special bit paired with the class is set:
// setuid for user, setgid for group, sticky for other.
func (p Permissions) Special(c Class) bool {
	switch c {
	case ClassUser:
		return p&PermSetuid != 0
	case ClassGroup:
		return p&PermSetgid != 0
	default:
		return p&PermSticky != 0
	}
}

// AnyExecute reports whether any of the three execute bits is set.
func (p Permissions) AnyExecute() bool {
	return p&0o111 != 0
}

// ItemCount describes how many children a directory has.
// The zero value means "not a directory".
type ItemCount struct {
	Count      int
	Valid      bool // Count holds a real child count
	Unreadable bool // the directory exists but could not be listed
}

// String renders the count for the Items column: a number, "?" or "-".
func (c ItemCount) String() string {
	switch {
	case c.Unreadable:
		return "?"
	case c.Valid:
		return strconv.Itoa(c.Count)
	default:
		return "-"
	}
}

// FileEntry is the metadata record for one directory entry.
// Name is always a single path component; Path is the full path the
// entry was read from.
type FileEntry struct {
	Name    string
	Path    string
	Kind    Kind
	Size    int64
	ModTime time.Time
	Owner   string
	Group   string
	Mode    Permissions
	Items   ItemCount
}

// IsHidden reports whether the entry name starts with a dot.
func (e FileEntry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// IsDir reports whether the entry is a real directory (not a symlink to one).
func (e FileEntry) IsDir() bool {
	return e.Kind == KindDirectory
}

// DisplayName returns Name with control characters and invalid UTF-8
// replaced by '?', so a name can never break a rendered line.
func (e FileEntry) DisplayName() string {
	name := strings.ToValidUTF8(e.Name, "?")
	if strings.IndexFunc(name, isControl) < 0 {
		return name
	}
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return '?'
		}
		return r
	}, name)
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}
