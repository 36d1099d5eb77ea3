package format

import (
	"testing"
	"time"

	"github.com/harrison/fls/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0B"},
		{256, "256B"},
		{1023, "1023B"},
		{1024, "1.0K"},
		{1536, "1.5K"},
		{5 * 1024 * 1024, "5.0M"},
		{3 * 1024 * 1024 * 1024 / 2, "1.5G"},
		{-4, "0B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Size(tt.in), "Size(%d)", tt.in)
	}
}

func TestSummary(t *testing.T) {
	p := models.Permissions(0o754)
	assert.Equal(t, "Read, Write, Execute", Summary(p, models.ClassUser))
	assert.Equal(t, "Read, Execute", Summary(p, models.ClassGroup))
	assert.Equal(t, "Read", Summary(p, models.ClassOther))
	assert.Equal(t, "Write", Summary(models.Permissions(0o020), models.ClassGroup))
}

// An all-zero permission word must render "None" everywhere, never a
// default-looking permission string.
func TestCells_ZeroPermissions(t *testing.T) {
	e := models.FileEntry{Name: "x", Kind: models.KindFile, Mode: 0}
	cells := Cells(e, Options{})
	require.Len(t, cells, len(Headers))

	assert.Equal(t, "x", cells[ColName])
	assert.Equal(t, "None", cells[3])
	assert.Equal(t, "None", cells[4])
	assert.Equal(t, "None", cells[5])
	assert.Equal(t, "000", cells[6])
	assert.Equal(t, "----------", cells[2])
	assert.Equal(t, "0B", cells[ColSize])
	assert.Equal(t, "unknown/unknown", cells[7])
	assert.Equal(t, "Unknown", cells[10])
}

func TestExecChar_AllCombinations(t *testing.T) {
	tests := []struct {
		name    string
		class   models.Class
		exec    bool
		special bool
		want    byte
	}{
		{"setuid with exec", models.ClassUser, true, true, 's'},
		{"setuid without exec", models.ClassUser, false, true, 'S'},
		{"exec only", models.ClassUser, true, false, 'x'},
		{"neither", models.ClassUser, false, false, '-'},
		{"setgid with exec", models.ClassGroup, true, true, 's'},
		{"setgid without exec", models.ClassGroup, false, true, 'S'},
		{"sticky with exec", models.ClassOther, true, true, 't'},
		{"sticky without exec", models.ClassOther, false, true, 'T'},
		{"other exec only", models.ClassOther, true, false, 'x'},
		{"other neither", models.ClassOther, false, false, '-'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(ExecChar(tt.class, tt.exec, tt.special)))
		})
	}
}

func TestSymbolic(t *testing.T) {
	tests := []struct {
		kind models.Kind
		mode models.Permissions
		want string
	}{
		{models.KindDirectory, 0o755, "drwxr-xr-x"},
		{models.KindFile, 0o644, "-rw-r--r--"},
		{models.KindExecutable, 0o4755, "-rwsr-xr-x"},
		{models.KindFile, 0o4644, "-rwSr--r--"},
		{models.KindDirectory, 0o1777, "drwxrwxrwt"},
		{models.KindDirectory, 0o1770, "drwxrwx--T"},
		{models.KindExecutable, 0o2755, "-rwxr-sr-x"},
		{models.KindSymlink, 0o777, "lrwxrwxrwx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Symbolic(tt.kind, tt.mode))
	}
}

func TestOctal(t *testing.T) {
	assert.Equal(t, "644", Octal(0o644))
	assert.Equal(t, "000", Octal(0))
	assert.Equal(t, "4755", Octal(0o4755))
}

func TestTime(t *testing.T) {
	assert.Equal(t, "Unknown", Time(time.Time{}, Options{}))

	ts := time.Date(2024, time.June, 8, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "Jun 08 14:30", Time(ts, Options{}))

	rel := Time(ts, Options{RelativeTime: true, Now: ts.Add(72 * time.Hour)})
	assert.Equal(t, "3 days ago", rel)
}

func TestCells_ItemsColumn(t *testing.T) {
	dir := models.FileEntry{Name: "src", Kind: models.KindDirectory, Items: models.ItemCount{Count: 4, Valid: true}}
	assert.Equal(t, "4", Cells(dir, Options{})[8])

	locked := models.FileEntry{Name: "locked", Kind: models.KindDirectory, Items: models.ItemCount{Unreadable: true}}
	assert.Equal(t, "?", Cells(locked, Options{})[8])

	file := models.FileEntry{Name: "f", Kind: models.KindFile}
	assert.Equal(t, "-", Cells(file, Options{})[8])
}
