package display

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harrison/fls/internal/format"
	"github.com/harrison/fls/internal/models"
)

// jsonEntry is the machine-readable form of one entry.
type jsonEntry struct {
	Name        string          `json:"name"`
	Path        string          `json:"path"`
	Type        string          `json:"type"`
	SizeBytes   int64           `json:"size_bytes"`
	SizeHuman   string          `json:"size_human"`
	Permissions jsonPermissions `json:"permissions"`
	Mode        string          `json:"mode"`
	Octal       string          `json:"octal"`
	Owner       string          `json:"owner"`
	Group       string          `json:"group"`
	Items       *int            `json:"items,omitempty"`
	Modified    string          `json:"modified"`
}

type jsonPermissions struct {
	User  string `json:"user"`
	Group string `json:"group"`
	Other string `json:"other"`
}

func newJSONEntry(e models.FileEntry) jsonEntry {
	je := jsonEntry{
		Name:      e.Name,
		Path:      e.Path,
		Type:      e.Kind.String(),
		SizeBytes: e.Size,
		SizeHuman: format.Size(e.Size),
		Permissions: jsonPermissions{
			User:  format.Summary(e.Mode, models.ClassUser),
			Group: format.Summary(e.Mode, models.ClassGroup),
			Other: format.Summary(e.Mode, models.ClassOther),
		},
		Mode:  format.Symbolic(e.Kind, e.Mode),
		Octal: format.Octal(e.Mode),
		Owner: e.Owner,
		Group: e.Group,
	}
	if e.Items.Valid {
		n := e.Items.Count
		je.Items = &n
	}
	if !e.ModTime.IsZero() {
		je.Modified = e.ModTime.Format(time.RFC3339)
	}
	return je
}

func (r *Renderer) renderJSON(path string) error {
	entries, err := r.list(path)
	if err != nil {
		return err
	}

	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, newJSONEntry(e))
	}

	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}
	return nil
}
