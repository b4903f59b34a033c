// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// CompressAndWrite gzips data to path at the given compression level
// (0 selects the library default). The artifact is staged as a temporary
// file in the destination directory and renamed into place on success, so
// no uncompressed or partial intermediate survives a failure.
func CompressAndWrite(data []byte, path string, level int) error {
	if level == 0 {
		level = gzip.DefaultCompression
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}

	gz, err := gzip.NewWriterLevel(tmp, level)
	if err != nil {
		return fail(err)
	}
	if _, err := gz.Write(data); err != nil {
		return fail(err)
	}
	if err := gz.Close(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
