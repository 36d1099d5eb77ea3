//go:build !unix

package fileutil

import "io/fs"

func ownerIDs(fs.FileInfo) (uid, gid string, ok bool) {
	return "", "", false
}
