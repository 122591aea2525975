package platform

import (
	"fmt"
	"os"
)

// EnsureDir creates path and any missing parents. An existing directory is not
// an error; an existing non-directory is. It reports whether anything was
// created.
func EnsureDir(path string, perm os.FileMode) (bool, error) {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	return true, nil
}
