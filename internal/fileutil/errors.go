package fileutil

import "fmt"

// RootUnreadableError reports a directory that could not be opened or listed.
type RootUnreadableError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *RootUnreadableError) Error() string {
	return fmt.Sprintf("cannot list %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *RootUnreadableError) Unwrap() error {
	return e.Err
}

// EntryError reports a single entry whose metadata could not be read.
type EntryError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("cannot stat %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *EntryError) Unwrap() error {
	return e.Err
}
