// Package format turns FileEntry metadata into the plain-text cell values
// shown by the table, tree and JSON renderers.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/harrison/fls/internal/models"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// TimeLayout is the absolute timestamp layout used in the Modified column.
const TimeLayout = "Jan 02 15:04"

// Headers are the table column titles, in cell order.
var Headers = []string{
	"Name",
	"Type",
	"Mode",
	"User Permission",
	"Group Permission",
	"Other Permission",
	"Octal",
	"User/Group (Owner)",
	"Items",
	"Size",
	"Modified",
}

// Column indexes into Headers that the style overlay targets.
const (
	ColName = 0
	ColSize = 9
)

// Options controls cell formatting.
type Options struct {
	// RelativeTime renders Modified as "3 days ago" instead of TimeLayout.
	RelativeTime bool
	// Now is the reference time for relative timestamps (zero = time.Now).
	Now time.Time
}

// Cells formats an entry into one plain-text cell per header.
func Cells(e models.FileEntry, opts Options) []string {
	return []string{
		e.DisplayName(),
		e.Kind.String(),
		Symbolic(e.Kind, e.Mode),
		Summary(e.Mode, models.ClassUser),
		Summary(e.Mode, models.ClassGroup),
		Summary(e.Mode, models.ClassOther),
		Octal(e.Mode),
		Owner(e),
		e.Items.String(),
		Size(e.Size),
		Time(e.ModTime, opts),
	}
}

// Size formats a byte count with 1024-based suffixes: "256B", "1.5K", "2.3M", "1.2G".
func Size(n int64) string {
	if n < 0 {
		n = 0
	}
	switch {
	case n < kib:
		return fmt.Sprintf("%dB", n)
	case n < mib:
		return fmt.Sprintf("%.1fK", float64(n)/kib)
	case n < gib:
		return fmt.Sprintf("%.1fM", float64(n)/mib)
	default:
		return fmt.Sprintf("%.1fG", float64(n)/gib)
	}
}

// Time formats a modification time. A zero time renders as "Unknown".
func Time(t time.Time, opts Options) string {
	if t.IsZero() {
		return "Unknown"
	}
	if opts.RelativeTime {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		return humanize.RelTime(t, now, "ago", "from now")
	}
	return t.Local().Format(TimeLayout)
}

// Summary describes one permission class in words, e.g. "Read, Execute".
// A class with no bits set is "None".
func Summary(p models.Permissions, c models.Class) string {
	bits := p.Bits(c)
	var parts []string
	if bits&4 != 0 {
		parts = append(parts, "Read")
	}
	if bits&2 != 0 {
		parts = append(parts, "Write")
	}
	if bits&1 != 0 {
		parts = append(parts, "Execute")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

// Octal renders the permission word (including special bits) as at least
// three octal digits: "644", "000", "4755".
func Octal(p models.Permissions) string {
	return fmt.Sprintf("%03o", uint32(p)&0o7777)
}

// Owner renders "owner/group", substituting "unknown" for empty names.
func Owner(e models.FileEntry) string {
	owner, group := e.Owner, e.Group
	if owner == "" {
		owner = "unknown"
	}
	if group == "" {
		group = "unknown"
	}
	return owner + "/" + group
}

// Symbolic renders the ls-style mode string, e.g. "drwxr-xr-x" or "-rwsr-x--T".
func Symbolic(k models.Kind, p models.Permissions) string {
	var b strings.Builder
	b.Grow(10)
	b.WriteByte(typeChar(k))
	for _, c := range []models.Class{models.ClassUser, models.ClassGroup, models.ClassOther} {
		bits := p.Bits(c)
		b.WriteByte(flag(bits&4 != 0, 'r'))
		b.WriteByte(flag(bits&2 != 0, 'w'))
		b.WriteByte(ExecChar(c, bits&1 != 0, p.Special(c)))
	}
	return b.String()
}

// ExecChar resolves the execute position of a triplet from the execute bit
// and the class's special bit (setuid, setgid or sticky):
//
//	exec  special  result
//	yes   yes      s / t
//	no    yes      S / T
//	yes   no       x
//	no    no       -
func ExecChar(c models.Class, exec, special bool) byte {
	letter := byte('s')
	if c == models.ClassOther {
		letter = 't'
	}
	switch {
	case exec && special:
		return letter
	case special:
		return letter - ('a' - 'A')
	case exec:
		return 'x'
	default:
		return '-'
	}
}

func flag(set bool, c byte) byte {
	if set {
		return c
	}
	return '-'
}

func typeChar(k models.Kind) byte {
	switch k {
	case models.KindDirectory:
		return 'd'
	case models.KindSymlink:
		return 'l'
	case models.KindOther:
		return '?'
	default:
		return '-'
	}
}
