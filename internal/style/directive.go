// Package style adds terminal colors and hyperlinks to already laid out text.
//
// Nothing in this package measures or pads text. Table styling works from
// the cell ranges recorded by the layout package, so escape sequences are
// spliced in after widths are fixed and never affect alignment.
package style

import (
	"net/url"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
)

// OSC 8 hyperlink framing: ESC ] 8 ; ; URL ESC \ TEXT ESC ] 8 ; ; ESC \
const (
	osc8Prefix = "\x1b]8;;"
	osc8End    = "\x1b\\"
	linkClose  = osc8Prefix + osc8End
)

// Directive describes how one piece of text is decorated.
type Directive struct {
	// Color is the SGR styling; nil means no color.
	Color *color.Color
	// Link is a hyperlink target; empty means no link.
	Link string
}

// IsZero reports whether the directive decorates nothing.
func (d Directive) IsZero() bool {
	return d.Color == nil && d.Link == ""
}

// Wrap decorates text. The hyperlink is opened first and closed last, so the
// color sequence nests inside it.
func (d Directive) Wrap(text string) string {
	out := text
	if d.Color != nil {
		out = d.Color.Sprint(text)
	}
	if d.Link != "" {
		out = osc8Prefix + d.Link + osc8End + out + linkClose
	}
	return out
}

// Hyperlink returns the file:// URL for path, resolving it to an absolute,
// percent-encoded path.
func Hyperlink(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

var controlSeq = regexp.MustCompile("\x1b\\[[0-9;]*m|\x1b\\]8;[^\x1b\a]*(?:\x1b\\\\|\a)")

// Strip removes SGR color sequences and OSC 8 hyperlink framing from s.
func Strip(s string) string {
	return controlSeq.ReplaceAllString(s, "")
}
