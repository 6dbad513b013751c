// Package template loads descriptor templates and renders them by
// placeholder substitution.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Logical template names accepted by Store.Get.
const (
	PKGBUILD = "pkgbuild"
	SRCINFO  = "srcinfo"
)

// ErrNotFound is returned when a template file is absent from the store.
var ErrNotFound = errors.New("template not found")

// NotFoundError reports which template was missing and where it was
// expected.
type NotFoundError struct {
	Name string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %s not found at %s", e.Name, e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// files maps logical template names onto file names inside the store
// directory.
var files = map[string]string{
	PKGBUILD: "PKGBUILD",
	SRCINFO:  "SRCINFO",
}

// Store reads templates from a directory on disk.
type Store struct {
	Dir string
}

// Get returns the raw text of the named template.
func (s *Store) Get(name string) (string, error) {
	file, ok := files[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}
	path := filepath.Join(s.Dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Name: name, Path: path}
		}
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(data), nil
}

// Missing reports whether any template file is absent from the store.
func (s *Store) Missing() bool {
	for _, file := range files {
		if _, err := os.Stat(filepath.Join(s.Dir, file)); err != nil {
			return true
		}
	}
	return false
}
