//go:build unix

// Package mmapfile memory-maps a document file read-only so the binary
// codec can skip-scan it without copying bytes it never visits.
package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Map opens path and maps its contents read-only. The file itself is
// closed before Map returns; the mapping stays valid until the returned
// closer unmaps it, and callers must not touch the returned slice
// afterward.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	closer := func() error {
		if data == nil {
			return nil
		}
		return unix.Munmap(data)
	}
	return data, closer, nil
}
