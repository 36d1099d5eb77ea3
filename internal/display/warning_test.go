package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWarning(t *testing.T) {
	tests := []struct {
		name     string
		warning  Warning
		contains []string
		absent   []string
	}{
		{
			name:     "title only",
			warning:  Warning{Title: "Listing incomplete"},
			contains: []string{"Warning: Listing incomplete\n"},
			absent:   []string{"Affected", "Suggestion"},
		},
		{
			name:     "with message",
			warning:  Warning{Title: "T", Message: "details here"},
			contains: []string{"    details here\n"},
		},
		{
			name:     "single file",
			warning:  Warning{Title: "T", Files: []string{"a"}},
			contains: []string{"Affected entry:\n", "      1. a\n"},
		},
		{
			name:     "multiple files",
			warning:  Warning{Title: "T", Files: []string{"a", "b"}},
			contains: []string{"Affected entries:\n", "      1. a\n", "      2. b\n"},
		},
		{
			name:     "with suggestion",
			warning:  Warning{Title: "T", Suggestion: "check permissions"},
			contains: []string{"    Suggestion:\n    check permissions\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.warning.Display(&buf, false)
			out := buf.String()

			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
			assert.NotContains(t, out, "\x1b[")
		})
	}
}

func TestDisplayWarningColored(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "T"}.Display(&buf, true)

	assert.Contains(t, buf.String(), "\x1b[33m")
	assert.Contains(t, buf.String(), "\x1b[0m")
}

func TestWarnUnreadableEntries(t *testing.T) {
	w := WarnUnreadableEntries("/data", []error{errors.New("cannot stat x: boom"), errors.New("cannot stat y: boom")})

	assert.Equal(t, "Some entries could not be read", w.Title)
	assert.Contains(t, w.Message, "/data")
	assert.Equal(t, []string{"cannot stat x: boom", "cannot stat y: boom"}, w.Files)
}
