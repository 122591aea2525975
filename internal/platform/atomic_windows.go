//go:build windows

package platform

import "os"

// WriteFileAtomic writes data to filename. Rename over an open file is not
// reliable on Windows, so this is a plain create-or-truncate write.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}
