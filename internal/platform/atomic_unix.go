//go:build !windows

package platform

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic replaces filename with data using a temp file in the same
// directory followed by a rename. The parent directory must exist.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
