// Package metadata carries the package description collected from the
// maintainer and derives template bindings from it.
package metadata

import (
	"fmt"

	packageurl "github.com/package-url/packageurl-go"

	"github.com/miteshhc/aurders/internal/template"
)

// Record is the ordered set of fields substituted into the descriptor
// templates. It is assembled once per run and read-only afterwards.
type Record struct {
	MaintainerName  string
	MaintainerEmail string
	Name            string
	Version         string
	Release         string
	Description     string
	URL             string
	License         string
	Arch            string
	Depends         string
	MakeDepends     string
	SHA256          string
}

// PKGBUILDBindings maps every record field one-to-one onto the build
// descriptor's placeholders.
func (r *Record) PKGBUILDBindings() []template.Binding {
	return []template.Binding{
		{Name: "maintainer_name", Value: r.MaintainerName},
		{Name: "maintainer_email", Value: r.MaintainerEmail},
		{Name: "pkgname", Value: r.Name},
		{Name: "pkgver", Value: r.Version},
		{Name: "pkgrel", Value: r.Release},
		{Name: "pkgdesc", Value: r.Description},
		{Name: "arch", Value: r.Arch},
		{Name: "url", Value: r.URL},
		{Name: "license", Value: r.License},
		{Name: "depends", Value: r.Depends},
		{Name: "makedepends", Value: r.MakeDepends},
		{Name: "sha256sums", Value: r.SHA256},
	}
}

// SRCINFOBindings maps the manifest subset of the record. The source,
// sha256sums and pkgname slots are resolved by makepkg when the descriptor
// is consumed, so they are bound to fixed literals rather than record
// fields.
func (r *Record) SRCINFOBindings() []template.Binding {
	return []template.Binding{
		{Name: "pkgbase", Value: r.Name},
		{Name: "pkgdesc", Value: r.Description},
		{Name: "pkgrel", Value: r.Release},
		{Name: "url", Value: r.URL},
		{Name: "arch", Value: r.Arch},
		{Name: "license", Value: r.License},
		{Name: "makedepends", Value: r.MakeDepends},
		{Name: "source", Value: "SOURCE"},
		{Name: "sha256sums", Value: "sha256sums"},
		{Name: "pkgname", Value: "pkgname"},
	}
}

// PURL returns the package's Package URL in the Arch Linux (alpm)
// namespace.
func (r *Record) PURL() string {
	return packageurl.NewPackageURL("alpm", "", r.Name, r.Version, nil, "").ToString()
}

// ParsePURL extracts a package name and version from a Package URL such as
// pkg:alpm/yay@12.0.5. The version may be empty.
func ParsePURL(s string) (name, version string, err error) {
	p, err := packageurl.FromString(s)
	if err != nil {
		return "", "", fmt.Errorf("parsing purl %s: %w", s, err)
	}
	return p.Name, p.Version, nil
}
