package platform

import (
	"errors"
	"fmt"
	"os"

	cp "github.com/otiai10/copy"
)

// ErrNotRegular is returned by CopyFile when the source is a directory or
// another non-regular file.
var ErrNotRegular = errors.New("not a regular file")

// CopyFile copies the regular file at src to dst, creating dst's parent
// directories and overwriting dst if it exists. The source permission bits
// are preserved.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", src, ErrNotRegular)
	}

	return cp.Copy(src, dst, cp.Options{
		OnSymlink: func(string) cp.SymlinkAction { return cp.Deep },
		Sync:      true,
	})
}
