// Package archive builds and unpacks gzip-compressed tar archives of
// package sources.
package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Build creates a compressed archive of sourceDir at
// <outDir>/<basename(sourceDir)>.tar.gz and returns the archive path.
// The source directory's basename is preserved as the top-level entry name,
// so unpacking restores the original directory rather than a flat file list.
// The output path is deterministic for a given source, letting callers run
// their own overwrite checks before invoking Build.
func Build(sourceDir, outDir string) (string, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return "", fmt.Errorf("reading source %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("source %s is not a directory", sourceDir)
	}

	base := filepath.Base(filepath.Clean(sourceDir))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("cannot derive an archive name from %s", sourceDir)
	}

	outPath := filepath.Join(outDir, base+".tar.gz")
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		name := base
		if rel != "." {
			name = base + "/" + filepath.ToSlash(rel)
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(fi, "")
		if err != nil {
			return err
		}
		hdr.Name = name
		if d.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() || !fi.Mode().IsRegular() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(tw, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	})

	if walkErr == nil {
		walkErr = tw.Close()
	} else {
		_ = tw.Close()
	}
	if walkErr == nil {
		walkErr = gz.Close()
	} else {
		_ = gz.Close()
	}
	if walkErr == nil {
		walkErr = out.Close()
	} else {
		_ = out.Close()
	}

	if walkErr != nil {
		_ = os.Remove(outPath)
		return "", fmt.Errorf("archiving %s: %w", sourceDir, walkErr)
	}
	return outPath, nil
}
