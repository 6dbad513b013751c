package cli

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/miteshhc/aurders/fetch"
)

const pkgbuildTemplate = `# Maintainer: {maintainer_name} <{maintainer_email}>
pkgname={pkgname}
pkgver={pkgver}
pkgrel={pkgrel}
pkgdesc="{pkgdesc}"
arch=('{arch}')
url="{url}"
license=('{license}')
depends=('{depends}')
makedepends=('{makedepends}')
sha256sums=('{sha256sums}')
`

const srcinfoTemplate = `pkgbase = {pkgbase}
	pkgdesc = {pkgdesc}
	pkgrel = {pkgrel}
	url = {url}
	arch = {arch}
	license = {license}
	makedepends = {makedepends}
	source = {source}
	sha256sums = {sha256sums}
pkgname = {pkgname}
`

// chdir changes into dir and restores the original working directory on
// cleanup, like testing.T.Chdir (unavailable before Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

// answers joins prompt responses into a stdin script.
func answers(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func writeTemplates(t *testing.T) {
	t.Helper()
	if err := os.Mkdir("templates", 0o755); err != nil {
		t.Fatal(err)
	}
	for file, content := range map[string]string{
		"templates/PKGBUILD": pkgbuildTemplate,
		"templates/SRCINFO":  srcinfoTemplate,
	} {
		if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// manualSourceAnswers walks the full prompt sequence, specifying the source
// manually so no tarball is built.
func manualSourceAnswers() *strings.Reader {
	return answers(
		"Alice",             // maintainer name
		"alice@example.com", // maintainer email
		"foo",               // package name
		"1.0",               // version
		"",                  // release, accepts default 1
		"Great tool",        // description
		"https://example.com",
		"MIT",
		"1", // arch menu: x86_64
		"",  // depends
		"",  // make dependencies
		"y", // specify sources manually
		"https://example.com/foo-1.0.tar.gz",
	)
}

func TestRunGeneratesBothArtifacts(t *testing.T) {
	chdir(t, t.TempDir())
	writeTemplates(t)

	var out, errw strings.Builder
	err := Run(context.Background(), Options{ConfigPath: "aurders.yml"}, manualSourceAnswers(), &out, &errw)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	pkgbuild, readErr := os.ReadFile("PKGBUILD")
	if readErr != nil {
		t.Fatalf("reading PKGBUILD: %v", readErr)
	}
	for _, want := range []string{
		"# Maintainer: Alice <alice@example.com>",
		"pkgname=foo",
		"pkgver=1.0",
		"pkgrel=1",
		"arch=('x86_64')",
		"license=('MIT')",
		"sha256sums=('SKIP')",
	} {
		if !strings.Contains(string(pkgbuild), want) {
			t.Errorf("PKGBUILD missing %q:\n%s", want, pkgbuild)
		}
	}

	srcinfo, readErr := os.ReadFile(".SRCINFO")
	if readErr != nil {
		t.Fatalf("reading .SRCINFO: %v", readErr)
	}
	for _, want := range []string{
		"pkgbase = foo",
		"source = SOURCE",
		"sha256sums = sha256sums",
		"pkgname = pkgname",
	} {
		if !strings.Contains(string(srcinfo), want) {
			t.Errorf(".SRCINFO missing %q:\n%s", want, srcinfo)
		}
	}

	if !strings.Contains(out.String(), "pkg:alpm/foo@1.0") {
		t.Errorf("summary missing package URL:\n%s", out.String())
	}
	if errw.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", errw.String())
	}
}

func TestRunRefusesOverwriteAndContinues(t *testing.T) {
	chdir(t, t.TempDir())
	writeTemplates(t)

	var out, errw strings.Builder
	if err := Run(context.Background(), Options{ConfigPath: "aurders.yml"}, manualSourceAnswers(), &out, &errw); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	first, err := os.ReadFile("PKGBUILD")
	if err != nil {
		t.Fatal(err)
	}

	out.Reset()
	errw.Reset()
	if err := Run(context.Background(), Options{ConfigPath: "aurders.yml"}, manualSourceAnswers(), &out, &errw); err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	diag := errw.String()
	if !strings.Contains(diag, "PKGBUILD already exists") {
		t.Errorf("diagnostics missing PKGBUILD refusal: %s", diag)
	}
	if !strings.Contains(diag, ".SRCINFO already exists") {
		t.Errorf("diagnostics missing .SRCINFO refusal: %s", diag)
	}

	second, err := os.ReadFile("PKGBUILD")
	if err != nil {
		t.Fatal(err)
	}
	if string(second) != string(first) {
		t.Error("PKGBUILD was modified by the refused second run")
	}
}

func TestRunPartialOverwriteStillWritesOther(t *testing.T) {
	chdir(t, t.TempDir())
	writeTemplates(t)
	if err := os.WriteFile("PKGBUILD", []byte("hand-authored\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errw strings.Builder
	if err := Run(context.Background(), Options{ConfigPath: "aurders.yml"}, manualSourceAnswers(), &out, &errw); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	kept, err := os.ReadFile("PKGBUILD")
	if err != nil {
		t.Fatal(err)
	}
	if string(kept) != "hand-authored\n" {
		t.Error("hand-authored PKGBUILD was modified")
	}
	if _, err := os.Stat(".SRCINFO"); err != nil {
		t.Errorf(".SRCINFO was not generated: %v", err)
	}
}

func TestRunBuildsTarballAndChecksum(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "mypkg")
	if err := os.Mkdir(srcDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "main.c"), []byte("int main(void) { return 0; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	chdir(t, dir)
	writeTemplates(t)

	in := answers(
		"Alice",
		"alice@example.com",
		"mypkg",
		"1.0",
		"",
		"Great tool",
		"https://example.com",
		"MIT",
		"1",
		"",
		"",
		"",     // no manual sources
		srcDir, // source directory for the tarball
	)

	var out, errw strings.Builder
	if err := Run(context.Background(), Options{ConfigPath: "aurders.yml"}, in, &out, &errw); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join("aurders", "mypkg.tar.gz")); err != nil {
		t.Errorf("source tarball missing: %v", err)
	}

	pkgbuild, err := os.ReadFile("PKGBUILD")
	if err != nil {
		t.Fatal(err)
	}
	sums := regexp.MustCompile(`sha256sums=\('([0-9a-f]{64})'\)`)
	if !sums.Match(pkgbuild) {
		t.Errorf("PKGBUILD has no hex checksum:\n%s", pkgbuild)
	}
}

func TestRunUnknownLicenseWarns(t *testing.T) {
	chdir(t, t.TempDir())
	writeTemplates(t)

	in := answers(
		"Alice", "alice@example.com", "foo", "1.0", "", "Great tool",
		"https://example.com",
		"custom:house-license",
		"1", "", "",
		"y", "https://example.com/foo-1.0.tar.gz",
	)

	var out, errw strings.Builder
	if err := Run(context.Background(), Options{ConfigPath: "aurders.yml"}, in, &out, &errw); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(errw.String(), "not a known SPDX identifier") {
		t.Errorf("diagnostics missing license warning: %s", errw.String())
	}
	// The warning is recoverable: the artifacts are still generated.
	if _, err := os.Stat("PKGBUILD"); err != nil {
		t.Errorf("PKGBUILD was not generated: %v", err)
	}
}

func TestRunPURLPrefill(t *testing.T) {
	chdir(t, t.TempDir())
	writeTemplates(t)

	// Name and version prompts accept the purl-derived defaults.
	in := answers(
		"Alice", "alice@example.com",
		"", // package name from purl
		"", // version from purl
		"", "Great tool", "https://example.com", "MIT", "1", "", "",
		"y", "https://example.com/yay-12.0.5.tar.gz",
	)

	var out, errw strings.Builder
	opts := Options{ConfigPath: "aurders.yml", PURL: "pkg:alpm/yay@12.0.5"}
	if err := Run(context.Background(), opts, in, &out, &errw); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	pkgbuild, err := os.ReadFile("PKGBUILD")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(pkgbuild), "pkgname=yay") {
		t.Errorf("PKGBUILD missing purl-derived name:\n%s", pkgbuild)
	}
	if !strings.Contains(string(pkgbuild), "pkgver=12.0.5") {
		t.Errorf("PKGBUILD missing purl-derived version:\n%s", pkgbuild)
	}
}

func TestRunBootstrapFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	chdir(t, t.TempDir())

	var out, errw strings.Builder
	opts := Options{ConfigPath: "aurders.yml", BundleURL: server.URL + "/templates.tar.gz"}
	err := Run(context.Background(), opts, strings.NewReader(""), &out, &errw)
	if !errors.Is(err, fetch.ErrNotFound) {
		t.Errorf("Run = %v, want fetch.ErrNotFound", err)
	}
}

func TestRunExhaustedInputIsFatal(t *testing.T) {
	chdir(t, t.TempDir())
	writeTemplates(t)

	var out, errw strings.Builder
	if err := Run(context.Background(), Options{ConfigPath: "aurders.yml"}, strings.NewReader(""), &out, &errw); err == nil {
		t.Error("Run on exhausted input succeeded, want error")
	}
}
