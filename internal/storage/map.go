package storage

import (
	"os"

	"github.com/pkg/errors"
)

// Anonymous returns a zeroed, writable region of size bytes that is not backed by
// any file. On unix it is an anonymous private mapping.
func Anonymous(size int) (*Region, error) {
	if size <= 0 {
		return NewHeap(size)
	}
	data, err := mapAnonymous(size)
	if err != nil {
		return nil, errors.Wrapf(err, "storage: map %d anonymous bytes", size)
	}
	return newRegion(data, AnonymousMap, true, nil), nil
}

// MapFile maps the file at path into a region. Writable regions are shared
// mappings: writes through them reach the file.
//
// Important: Always Release the region when done (use defer).
func MapFile(path string, writable bool) (*Region, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	//nolint:gosec // G304: mapping a caller-chosen path is the point of this function
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, errors.Wrap(err, "storage: open")
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "storage: stat")
	}
	if stat.Size() == 0 {
		_ = f.Close()
		return newRegion(nil, FileMap, writable, nil), nil
	}

	data, err := mapFile(f, stat.Size(), writable)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "storage: map %s", path)
	}
	return newRegion(data, FileMap, writable, f), nil
}
