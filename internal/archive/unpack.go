package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const (
	defaultDirPerm  fs.FileMode = 0o755
	defaultFilePerm fs.FileMode = 0o644
)

// Unpack reads a gzip-compressed tar stream from r and writes every entry
// under dest, preserving relative paths and modes. Entries already written
// before a failure are left in place; rerunning the unpack is the recovery
// path.
func Unpack(r io.Reader, dest string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("decoding gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading archive: %w", err)
		}

		target, err := entryPath(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, entryPerm(hdr, defaultDirPerm)); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), defaultDirPerm); err != nil {
				return fmt.Errorf("creating directory for %s: %w", target, err)
			}
			if err := writeEntry(target, tr, entryPerm(hdr, defaultFilePerm)); err != nil {
				return err
			}
		default:
			// Template bundles carry only files and directories.
		}
	}
}

func writeEntry(target string, r io.Reader, perm fs.FileMode) error {
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", target, err)
	}
	return nil
}

// entryPath joins an archive entry name onto dest, rejecting names that
// would escape it.
func entryPath(dest, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("archive entry escapes destination: %s", name)
	}
	return filepath.Join(dest, clean), nil
}

func entryPerm(hdr *tar.Header, fallback fs.FileMode) fs.FileMode {
	perm := fs.FileMode(hdr.Mode).Perm()
	if perm == 0 {
		return fallback
	}
	return perm
}
