// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import "fmt"

// LoadError reports that a source mapping file could not be read or
// decoded: missing file, invalid gzip stream, or a container that is not a
// JSON object of name attributes.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// WriteError reports that an output artifact could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
