package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/fls/internal/models"
)

// Size thresholds for the size column colors.
const (
	sizeMedium = 1 << 20   // 1 MiB
	sizeLarge  = 100 << 20 // 100 MiB
	sizeHuge   = 1 << 30   // 1 GiB
)

// DefaultScheme is the scheme used when none is configured.
const DefaultScheme = "default"

// Scheme maps entry kinds and sizes to colors. A nil color leaves the text plain.
type Scheme struct {
	Name string
	// Enabled is false when the scheme was built with colors off.
	Enabled bool

	Hidden     *color.Color
	Directory  *color.Color
	Executable *color.Color
	Symlink    *color.Color
	Other      *color.Color
	File       *color.Color

	SizeSmall  *color.Color
	SizeMedium *color.Color
	SizeLarge  *color.Color
	SizeHuge   *color.Color
}

type palette func(mk func(...color.Attribute) *color.Color) *Scheme

var schemes = map[string]palette{
	"default": func(mk func(...color.Attribute) *color.Color) *Scheme {
		return &Scheme{
			Hidden:     mk(color.FgHiBlack),
			Directory:  mk(color.FgBlue, color.Bold),
			Executable: mk(color.FgGreen, color.Bold),
			Symlink:    mk(color.FgCyan),
			Other:      mk(color.FgYellow),
			SizeSmall:  mk(color.FgGreen),
			SizeMedium: mk(color.FgYellow),
			SizeLarge:  mk(color.FgMagenta),
			SizeHuge:   mk(color.FgRed, color.Bold),
		}
	},
	"high-contrast": func(mk func(...color.Attribute) *color.Color) *Scheme {
		return &Scheme{
			Hidden:     mk(color.FgHiBlack),
			Directory:  mk(color.FgHiBlue, color.Bold),
			Executable: mk(color.FgHiGreen, color.Bold),
			Symlink:    mk(color.FgHiCyan),
			Other:      mk(color.FgHiYellow),
			File:       mk(color.FgHiWhite),
			SizeSmall:  mk(color.FgHiGreen),
			SizeMedium: mk(color.FgHiYellow),
			SizeLarge:  mk(color.FgHiMagenta),
			SizeHuge:   mk(color.FgHiRed, color.Bold),
		}
	},
	"monochrome": func(mk func(...color.Attribute) *color.Color) *Scheme {
		return &Scheme{
			Hidden:     mk(color.Faint),
			Directory:  mk(color.Bold),
			Executable: mk(color.Underline),
			Symlink:    mk(color.Italic),
			SizeLarge:  mk(color.Bold),
			SizeHuge:   mk(color.Bold, color.Underline),
		}
	},
	"solarized": func(mk func(...color.Attribute) *color.Color) *Scheme {
		return &Scheme{
			Hidden:     mk(rgb(88, 110, 117)...),
			Directory:  mk(append(rgb(38, 139, 210), color.Bold)...),
			Executable: mk(append(rgb(133, 153, 0), color.Bold)...),
			Symlink:    mk(rgb(42, 161, 152)...),
			Other:      mk(rgb(181, 137, 0)...),
			File:       mk(rgb(131, 148, 150)...),
			SizeSmall:  mk(rgb(133, 153, 0)...),
			SizeMedium: mk(rgb(181, 137, 0)...),
			SizeLarge:  mk(rgb(211, 54, 130)...),
			SizeHuge:   mk(append(rgb(220, 50, 47), color.Bold)...),
		}
	},
}

// rgb returns the SGR parameters for a 24-bit foreground color.
func rgb(r, g, b int) []color.Attribute {
	return []color.Attribute{38, 2, color.Attribute(r), color.Attribute(g), color.Attribute(b)}
}

// SchemeNames lists the available scheme names, sorted.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScheme builds the named scheme. When enabled is false every color is nil
// and the scheme emits no escape sequences; when true colors are forced on
// regardless of whether stdout is a terminal.
func NewScheme(name string, enabled bool) (*Scheme, error) {
	if name == "" {
		name = DefaultScheme
	}
	build, ok := schemes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color scheme %q (available: %s)", name, strings.Join(SchemeNames(), ", "))
	}

	mk := func(attrs ...color.Attribute) *color.Color {
		if !enabled {
			return nil
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c
	}

	s := build(mk)
	s.Name = strings.ToLower(name)
	s.Enabled = enabled
	return s, nil
}

// Plain returns a scheme with no colors.
func Plain() *Scheme {
	s, _ := NewScheme(DefaultScheme, false)
	return s
}

// NameColor picks the color for an entry's name. Hidden entries take
// precedence over their kind.
func (s *Scheme) NameColor(e models.FileEntry) *color.Color {
	if e.IsHidden() {
		return s.Hidden
	}
	switch e.Kind {
	case models.KindDirectory:
		return s.Directory
	case models.KindExecutable:
		return s.Executable
	case models.KindSymlink:
		return s.Symlink
	case models.KindOther:
		return s.Other
	default:
		return s.File
	}
}

// SizeColor picks the color for a size cell from the byte count.
func (s *Scheme) SizeColor(n int64) *color.Color {
	switch {
	case n >= sizeHuge:
		return s.SizeHuge
	case n >= sizeLarge:
		return s.SizeLarge
	case n >= sizeMedium:
		return s.SizeMedium
	default:
		return s.SizeSmall
	}
}

// NameDirective returns the directive for an entry name, adding a hyperlink
// to the entry's path when links is set.
func (s *Scheme) NameDirective(e models.FileEntry, links bool) Directive {
	d := Directive{Color: s.NameColor(e)}
	if links && e.Path != "" {
		d.Link = Hyperlink(e.Path)
	}
	return d
}

// Styled renders an entry's display name with its directive applied.
func (s *Scheme) Styled(e models.FileEntry, links bool) string {
	return s.NameDirective(e, links).Wrap(e.DisplayName())
}
