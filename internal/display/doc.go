// Package display renders a directory to a writer in one of four views.
//
// # Views
//
// Render picks the view from Options, in this order:
//
//   - JSON: an indented array of entry objects
//   - Tree: the root path, one line per entry below it, then a
//     "N directories, M files" summary
//   - Long: a box-drawn table with one row per entry
//   - otherwise one name per line
//
// Typical use:
//
//	r := &display.Renderer{
//	    Out:     os.Stdout,
//	    Err:     os.Stderr,
//	    Lister:  fileutil.NewLister(fileutil.Options{CountItems: true}),
//	    Scheme:  scheme,
//	    Options: display.Options{Long: true},
//	}
//	if err := r.Render("."); err != nil {
//	    // only a root that cannot be listed ends up here
//	}
//
// # Colors
//
// All styling goes through the style package. The table is laid out from
// plain text first and styled afterwards from recorded cell offsets, so
// colored and plain output have identical column alignment.
//
// # Warnings
//
// Entries whose metadata cannot be read are left out of the listing and
// reported as a Warning on Err. Warnings never change the exit status.
//
// All output functions accept io.Writer interfaces for testability.
package display
