package changelog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a document contains no version heading.
// Callers treat it as a no-op rather than a failure.
var ErrNotFound = errors.New("no version entry found")

// PatternError reports a heading or boundary pattern that cannot be used.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("Error compiling changelog regex %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// ReadError reports a changelog file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Error reading file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// VersionMismatchError is returned when the changelog version is not among
// the expected versions.
type VersionMismatchError struct {
	Version string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("Version mismatch, changelog version is %s!", e.Version)
}

// WriteError reports an output file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Error: writing to file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

