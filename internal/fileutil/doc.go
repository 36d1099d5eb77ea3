// Package fileutil reads directories into models.FileEntry records.
//
// Reading is error tolerant in the same way everywhere: a directory that
// cannot be opened is a hard error (RootUnreadableError), while an entry
// whose metadata cannot be read is left out of Listing.Entries and recorded
// in Listing.Errors so callers can keep going.
//
// Entries are classified with os.Lstat, so a symlink is always reported as
// KindSymlink and is never followed, even when it points at a directory.
//
// Basic use:
//
//	lister := fileutil.NewLister(fileutil.Options{CountItems: true})
//	listing, err := lister.ReadDir("/var/log", false)
//	if err != nil {
//	    return err // *RootUnreadableError
//	}
//	for _, e := range listing.Entries {
//	    fmt.Println(e.Name, e.Kind)
//	}
//
// Listing.Entries is returned in directory order; sorting is the
// renderer's job (see SortEntries).
package fileutil
