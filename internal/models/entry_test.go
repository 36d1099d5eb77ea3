package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindFile:       "File",
		KindDirectory:  "Directory",
		KindExecutable: "Executable",
		KindSymlink:    "Symlink",
		KindOther:      "Other",
		Kind(99):       "Other",
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}
}

func TestPermissionBits(t *testing.T) {
	p := Permissions(0o754)

	assert.Equal(t, uint32(7), p.Bits(ClassUser))
	assert.Equal(t, uint32(5), p.Bits(ClassGroup))
	assert.Equal(t, uint32(4), p.Bits(ClassOther))
	assert.True(t, p.AnyExecute())
	assert.False(t, Permissions(0o644).AnyExecute())
	assert.False(t, Permissions(0).AnyExecute())
}

func TestPermissionSpecial(t *testing.T) {
	tests := []struct {
		name  string
		perm  Permissions
		class Class
		want  bool
	}{
		{name: "setuid", perm: 0o4755, class: ClassUser, want: true},
		{name: "setuid is not setgid", perm: 0o4755, class: ClassGroup, want: false},
		{name: "setgid", perm: 0o2755, class: ClassGroup, want: true},
		{name: "sticky", perm: 0o1777, class: ClassOther, want: true},
		{name: "none", perm: 0o777, class: ClassOther, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.perm.Special(tt.class))
		})
	}
}

func TestItemCountString(t *testing.T) {
	assert.Equal(t, "-", ItemCount{}.String())
	assert.Equal(t, "0", ItemCount{Valid: true}.String())
	assert.Equal(t, "12", ItemCount{Count: 12, Valid: true}.String())
	assert.Equal(t, "?", ItemCount{Unreadable: true}.String())
}

func TestFileEntryPredicates(t *testing.T) {
	assert.True(t, FileEntry{Name: ".git"}.IsHidden())
	assert.False(t, FileEntry{Name: "git"}.IsHidden())
	assert.True(t, FileEntry{Kind: KindDirectory}.IsDir())
	assert.False(t, FileEntry{Kind: KindSymlink}.IsDir(), "a link to a directory is not a directory")
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "report.pdf", want: "report.pdf"},
		{name: "wide", in: "日本語.txt", want: "日本語.txt"},
		{name: "newline", in: "a\nb", want: "a?b"},
		{name: "escape", in: "\x1b[31mred", want: "?[31mred"},
		{name: "invalid utf8", in: "bad\xffname", want: "bad?name"},
		{name: "c1 control", in: "x\u0085y", want: "x?y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileEntry{Name: tt.in}.DisplayName())
		})
	}
}
