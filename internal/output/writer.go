// Package output persists generated artifacts without clobbering files a
// maintainer may have authored by hand.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrExists is returned when the target path already holds a file.
var ErrExists = errors.New("file already exists")

// ExistsError reports a refused overwrite.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s: file already exists", e.Path)
}

func (e *ExistsError) Unwrap() error {
	return ErrExists
}

// Persist writes data to a new file at path. Creation is atomic: when a
// file already exists the call fails with an ExistsError and the existing
// content is left untouched.
func Persist(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &ExistsError{Path: path}
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
