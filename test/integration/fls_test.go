package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/fls/internal/cmd"
	"github.com/harrison/fls/internal/layout"
	"github.com/harrison/fls/internal/style"
	"github.com/harrison/fls/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := cmd.NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), errOut.String())
	return out.String()
}

func TestWideCharacterTableAlignment(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"日本語.txt", "a.txt", "émigré.md", "한국어"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
	}

	for _, color := range []string{"never", "always"} {
		t.Run(color, func(t *testing.T) {
			out := run(t, "-l", "--color", color, "-i", dir)
			lines := strings.Split(strings.TrimSuffix(style.Strip(out), "\n"), "\n")
			require.Len(t, lines, 8)

			width := layout.StringWidth(lines[0])
			for _, line := range lines {
				assert.Equal(t, width, layout.StringWidth(line), "misaligned: %q", line)
			}
		})
	}
}

func TestTreeStopsAtCeiling(t *testing.T) {
	dir := t.TempDir()
	path := dir
	for i := 0; i < tree.DefaultCeiling+5; i++ {
		path = filepath.Join(path, "d")
	}
	require.NoError(t, os.MkdirAll(path, 0o755))

	tests := []struct {
		name  string
		args  []string
		lines int
	}{
		{name: "unlimited is the ceiling", args: []string{"-t"}, lines: tree.DefaultCeiling},
		{name: "above the ceiling is clamped", args: []string{"-t", "--depth", "99"}, lines: tree.DefaultCeiling},
		{name: "explicit depth", args: []string{"-t", "--depth", "3"}, lines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, append(tt.args, dir)...)
			assert.Equal(t, tt.lines, strings.Count(out, "└── d"))
			assert.True(t, strings.HasSuffix(out, "directories, 0 files\n"), out)
		})
	}
}

func TestTreeIsolatesUnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name, "inside"), 0o755))
	}
	locked := filepath.Join(dir, "b")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	out := run(t, "-t", dir)

	want := dir + "\n" +
		"├── a\n" +
		"│   └── inside\n" +
		"├── b\n" +
		"└── c\n" +
		"    └── inside\n" +
		"\n" +
		"5 directories, 0 files\n"
	assert.Equal(t, want, out)
}

func TestZeroPermissionFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "locked")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	require.NoError(t, os.Chmod(file, 0o000))

	out := run(t, "-l", dir)

	row := strings.Split(out, "\n")[3]
	assert.Equal(t, 3, strings.Count(row, " None "), row)
	assert.Contains(t, row, " 000 ")
	assert.Contains(t, row, "----------")
}
