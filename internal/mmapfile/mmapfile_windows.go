//go:build windows

package mmapfile

import "os"

// Map reads path fully into memory; the teacher's own Windows build falls
// back to a plain read rather than maintaining a separate Windows mmap
// path, so we do the same here.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
