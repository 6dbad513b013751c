// Package aurders generates Arch Linux build descriptors interactively.
//
// The package renders a PKGBUILD and a .SRCINFO manifest by substituting
// maintainer-supplied metadata into fixed templates, builds compressed
// source tarballs, computes SHA-256 checksums, and bootstraps its template
// store from a remote release bundle.
//
// Basic usage:
//
//	import "github.com/miteshhc/aurders"
//
//	rec := &aurders.Record{Name: "yay", Version: "12.0.5"}
//	store := &aurders.Store{Dir: "templates"}
//	text, err := store.Get(aurders.PKGBUILD)
//	if err != nil {
//		log.Fatal(err)
//	}
//	descriptor := aurders.Render(text, rec.PKGBUILDBindings())
//	if err := aurders.Persist("PKGBUILD", []byte(descriptor)); err != nil {
//		log.Fatal(err)
//	}
//
// The interactive command lives in cmd/aurders.
package aurders

import (
	"context"
	"io"

	"github.com/miteshhc/aurders/fetch"
	"github.com/miteshhc/aurders/internal/archive"
	"github.com/miteshhc/aurders/internal/checksum"
	"github.com/miteshhc/aurders/internal/metadata"
	"github.com/miteshhc/aurders/internal/output"
	"github.com/miteshhc/aurders/internal/template"
)

// Re-export types from the internal packages
type (
	// Record is the metadata substituted into the descriptor templates.
	Record = metadata.Record

	// Store reads descriptor templates from a directory on disk.
	Store = template.Store

	// Binding pairs a placeholder name with its replacement value.
	Binding = template.Binding

	// NotFoundError reports a missing template file.
	NotFoundError = template.NotFoundError

	// ExistsError reports a refused overwrite of an existing file.
	ExistsError = output.ExistsError
)

// Logical template names accepted by Store.Get.
const (
	PKGBUILD = template.PKGBUILD
	SRCINFO  = template.SRCINFO
)

// Skip is the makepkg sentinel for an intentionally omitted checksum.
const Skip = checksum.Skip

// DefaultBundleURL is the release asset carrying the descriptor templates.
const DefaultBundleURL = template.DefaultBundleURL

// Re-export errors
var (
	ErrNotFound = template.ErrNotFound
	ErrExists   = output.ErrExists
)

// Render substitutes every bound {name} placeholder in text. Unbound
// placeholders pass through untouched.
func Render(text string, bindings []Binding) string {
	return template.Render(text, bindings)
}

// Persist writes data to a new file at path, failing with ErrExists when
// the path is already occupied.
func Persist(path string, data []byte) error {
	return output.Persist(path, data)
}

// SHA256 returns the hex-encoded SHA-256 digest of the file at path.
func SHA256(path string) (string, error) {
	return checksum.SHA256(path)
}

// Digest returns the SHA-256 digest of the file at path, or Skip when the
// file cannot be read.
func Digest(path string) string {
	return checksum.Digest(path)
}

// BuildTarball archives sourceDir into <outDir>/<basename>.tar.gz and
// returns the archive path.
func BuildTarball(sourceDir, outDir string) (string, error) {
	return archive.Build(sourceDir, outDir)
}

// Unpack extracts a gzip-compressed tar stream under dest.
func Unpack(r io.Reader, dest string) error {
	return archive.Unpack(r, dest)
}

// Bootstrap downloads the template bundle from url and unpacks it into
// destDir, removing the intermediate archive on success.
func Bootstrap(ctx context.Context, f fetch.FetcherInterface, url, destDir string) error {
	return template.Bootstrap(ctx, f, url, destDir)
}

// DefaultFetcher returns the fetcher used for template bootstraps: retrying,
// DNS-cached, and circuit broken per host.
func DefaultFetcher() fetch.FetcherInterface {
	return fetch.NewCircuitBreakerFetcher(fetch.NewFetcher())
}
