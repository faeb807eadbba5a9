package fsutil

import "os"

// EnsureDir creates dir and any missing parents. Creating a directory that
// already exists is a no-op, not an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
