package template

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/miteshhc/aurders/fetch"
	"github.com/miteshhc/aurders/internal/archive"
)

// DefaultBundleURL is the release asset carrying the PKGBUILD and SRCINFO
// templates.
const DefaultBundleURL = "https://github.com/miteshhc/aurders/releases/download/template/templates.tar.gz"

// Bootstrap downloads the template bundle from url and unpacks its entries
// into destDir. The bundle carries a templates/ directory, so destDir is the
// parent of the store directory. The intermediate archive is removed on
// success. A failure partway through unpacking leaves already-written
// entries in place; rerunning the bootstrap is the recovery path.
func Bootstrap(ctx context.Context, f fetch.FetcherInterface, url, destDir string) error {
	artifact, err := f.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetching template bundle: %w", err)
	}
	defer artifact.Body.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", destDir, err)
	}

	tmp, err := os.CreateTemp(destDir, "templates-*.tar.gz")
	if err != nil {
		return fmt.Errorf("creating bundle file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, artifact.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("downloading template bundle: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing bundle file: %w", err)
	}

	bundle, err := os.Open(tmpPath)
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("opening bundle file: %w", err)
	}
	if err := archive.Unpack(bundle, destDir); err != nil {
		_ = bundle.Close()
		return fmt.Errorf("unpacking template bundle into %s (partially written entries and %s must be removed manually): %w", destDir, tmpPath, err)
	}
	if err := bundle.Close(); err != nil {
		return fmt.Errorf("closing bundle file: %w", err)
	}

	if err := os.Remove(tmpPath); err != nil {
		log.Printf("template: could not remove %s: %v; remove it manually", tmpPath, err)
	}
	return nil
}
