//go:build !unix

package storage

import (
	"io"
	"os"

	"github.com/born-ml/ndbuf/internal/errs"
)

// Without mmap support, anonymous regions fall back to heap-like slices and file
// regions to a private read-only copy of the file.

func mapAnonymous(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func mapFile(f *os.File, size int64, writable bool) ([]byte, error) {
	if writable {
		return nil, errs.Unsupported("writable file mappings on this platform")
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return data, nil
}

func unmap([]byte) error { return nil }
