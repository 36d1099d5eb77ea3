//go:build unix

package fileutil

import (
	"io/fs"
	"strconv"
	"syscall"
)

func ownerIDs(info fs.FileInfo) (uid, gid string, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", "", false
	}
	return strconv.FormatUint(uint64(st.Uid), 10), strconv.FormatUint(uint64(st.Gid), 10), true
}
