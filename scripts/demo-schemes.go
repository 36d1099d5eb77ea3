//go:build ignore
// +build ignore

// Demo script that previews every color scheme on a sample table.
// Run with: go run scripts/demo-schemes.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harrison/fls/internal/format"
	"github.com/harrison/fls/internal/layout"
	"github.com/harrison/fls/internal/models"
	"github.com/harrison/fls/internal/style"
)

func main() {
	now := time.Now()
	entries := []models.FileEntry{
		{Name: ".env", Kind: models.KindFile, Size: 120, Mode: 0o600, Owner: "me", Group: "staff", ModTime: now.Add(-time.Hour)},
		{Name: "bin", Kind: models.KindDirectory, Mode: 0o755, Owner: "me", Group: "staff", ModTime: now, Items: models.ItemCount{Count: 3, Valid: true}},
		{Name: "build.sh", Kind: models.KindExecutable, Size: 2 << 20, Mode: 0o755, Owner: "me", Group: "staff", ModTime: now.Add(-48 * time.Hour)},
		{Name: "current", Kind: models.KindSymlink, Size: 7, Mode: 0o777, Owner: "me", Group: "staff", ModTime: now},
		{Name: "dataset.bin", Kind: models.KindFile, Size: 300 << 20, Mode: 0o644, Owner: "me", Group: "staff", ModTime: now.Add(-720 * time.Hour)},
		{Name: "disk.img", Kind: models.KindFile, Size: 3 << 30, Mode: 0o644, Owner: "me", Group: "staff", ModTime: now.Add(-8760 * time.Hour)},
	}

	opts := format.Options{RelativeTime: true, Now: now}
	cols := style.Columns{Name: format.ColName, Size: format.ColSize}

	for _, name := range style.SchemeNames() {
		scheme, err := style.NewScheme(name, true)
		if err != nil {
			panic(err)
		}

		rows := make([]layout.Row, 0, len(entries))
		var spans []style.Span
		for i, e := range entries {
			rows = append(rows, format.Cells(e, opts))
			spans = append(spans, scheme.SpansFor(i, e, cols, false)...)
		}

		fmt.Println("=" + strings.Repeat("=", 60))
		fmt.Printf("Scheme: %s\n", name)
		fmt.Println("=" + strings.Repeat("=", 60))
		for _, line := range style.Apply(layout.Render(format.Headers, rows), spans) {
			fmt.Println(line)
		}
		fmt.Println()
	}
}
