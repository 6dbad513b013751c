// Package cli wires an interactive generation run together: configuration,
// template acquisition, metadata collection, rendering and persistence.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/miteshhc/aurders/fetch"
	"github.com/miteshhc/aurders/internal/archive"
	"github.com/miteshhc/aurders/internal/checksum"
	"github.com/miteshhc/aurders/internal/config"
	"github.com/miteshhc/aurders/internal/metadata"
	"github.com/miteshhc/aurders/internal/output"
	"github.com/miteshhc/aurders/internal/prompt"
	"github.com/miteshhc/aurders/internal/template"
)

// Output file names, written into the working directory.
const (
	descriptorFile = "PKGBUILD"
	manifestFile   = ".SRCINFO"
)

// Options come from the command line and override the loaded configuration.
type Options struct {
	ConfigPath     string
	TemplateDir    string
	BundleURL      string
	OutputDir      string
	PURL           string
	FetchTemplates bool
}

// Run executes one interactive generation pass. The returned error is
// fatal; recoverable conditions are reported on errw and the run keeps
// going.
func Run(ctx context.Context, opts Options, in io.Reader, out, errw io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, opts)

	store := &template.Store{Dir: cfg.TemplateDir}
	if err := ensureTemplates(ctx, store, cfg, opts.FetchTemplates, out); err != nil {
		return err
	}

	p := prompt.New(in, out)
	rec, err := collect(p, cfg, opts, out, errw)
	if err != nil {
		return err
	}

	if rec.License != "" && !metadata.ValidLicense(rec.License) {
		fmt.Fprintf(errw, "license %q is not a known SPDX identifier\n", rec.License)
	}

	var recoverable *multierror.Error
	for _, artifact := range []struct {
		templateName string
		file         string
		bindings     []template.Binding
	}{
		{template.PKGBUILD, descriptorFile, rec.PKGBUILDBindings()},
		{template.SRCINFO, manifestFile, rec.SRCINFOBindings()},
	} {
		text, err := store.Get(artifact.templateName)
		if err != nil {
			return err
		}
		rendered := template.Render(text, artifact.bindings)
		if err := output.Persist(artifact.file, []byte(rendered)); err != nil {
			if errors.Is(err, output.ErrExists) {
				fmt.Fprintf(errw, "%s already exists; refusing to overwrite\n", artifact.file)
				recoverable = multierror.Append(recoverable, err)
				continue
			}
			return err
		}
		fmt.Fprintf(out, "Generated %s.\n", artifact.file)
	}

	fmt.Fprintf(out, "\nPackage URL: %s\n", rec.PURL())
	if err := recoverable.ErrorOrNil(); err != nil {
		fmt.Fprintf(errw, "run completed with issues: %v\n", err)
	}
	return nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.TemplateDir != "" {
		cfg.TemplateDir = opts.TemplateDir
	}
	if opts.BundleURL != "" {
		cfg.BundleURL = opts.BundleURL
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
}

// ensureTemplates bootstraps the template store from the release bundle when
// any template is missing, or when a refetch was requested.
func ensureTemplates(ctx context.Context, store *template.Store, cfg config.Config, force bool, out io.Writer) error {
	if !force && !store.Missing() {
		return nil
	}
	fmt.Fprintf(out, "Fetching template bundle from %s...\n", cfg.BundleURL)
	fetcher := fetch.NewCircuitBreakerFetcher(fetch.NewFetcher())
	if err := template.Bootstrap(ctx, fetcher, cfg.BundleURL, filepath.Dir(cfg.TemplateDir)); err != nil {
		return err
	}
	fmt.Fprintln(out, "Fetched templates successfully.")
	return nil
}

// collect walks the maintainer through every record field.
func collect(p *prompt.Prompter, cfg config.Config, opts Options, out, errw io.Writer) (*metadata.Record, error) {
	defName, defVersion := "", ""
	if opts.PURL != "" {
		name, version, err := metadata.ParsePURL(opts.PURL)
		if err != nil {
			fmt.Fprintf(errw, "ignoring -purl: %v\n", err)
		} else {
			defName, defVersion = name, version
		}
	}

	if host, ok := metadata.HostArch(); !ok {
		fmt.Fprintf(errw, "architecture %s is not supported by Arch Linux\n", host)
		cont, err := p.Bool("Do you still want to continue?(y/N)")
		if err != nil {
			return nil, err
		}
		if !cont {
			return nil, errors.New("aborted by operator")
		}
	}

	rec := &metadata.Record{}
	var err error

	ask := func(dst *string, label, def string) {
		if err != nil {
			return
		}
		*dst, err = p.String(label, def)
	}
	askStrict := func(dst *string, label, def string) {
		if err != nil {
			return
		}
		if def != "" {
			*dst, err = p.String(label, def)
			return
		}
		*dst, err = p.StringStrict(label)
	}

	ask(&rec.MaintainerName, "Enter the name of maintainer:", cfg.Maintainer.Name)
	ask(&rec.MaintainerEmail, "Enter the email of maintainer:", cfg.Maintainer.Email)
	askStrict(&rec.Name, "Enter the name of package:", defName)
	askStrict(&rec.Version, "Enter the version of package:", defVersion)
	ask(&rec.Release, "Enter the release number of package:", "1")
	askStrict(&rec.Description, "Enter the description about package:", "")
	ask(&rec.URL, "Enter the url of package:", "")
	ask(&rec.License, "Enter the license of package:", "")
	if err != nil {
		return nil, err
	}

	rec.Arch, err = p.SelectArch()
	if err != nil {
		return nil, err
	}

	ask(&rec.Depends, "Enter the dependencies of package:", "")
	ask(&rec.MakeDepends, "Enter the make dependencies of package:", "")
	if err != nil {
		return nil, err
	}

	if err := collectSource(p, cfg, rec, out); err != nil {
		return nil, err
	}
	return rec, nil
}

// collectSource fills the checksum field, either from a freshly built source
// tarball or with the skip sentinel for a manually specified source.
func collectSource(p *prompt.Prompter, cfg config.Config, rec *metadata.Record, out io.Writer) error {
	manual, err := p.Bool("Do you want to specify source(s) manually?(y/N)")
	if err != nil {
		return err
	}
	if manual {
		source, err := p.StringStrict("Enter the source of package:")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Using source %s; checksum set to %s.\n", source, checksum.Skip)
		rec.SHA256 = checksum.Skip
		return nil
	}

	sourceDir, err := p.StringStrict("Enter the path of source directory:")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}
	tarball, err := archive.Build(sourceDir, cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created source archive %s.\n", tarball)
	rec.SHA256 = checksum.Digest(tarball)
	return nil
}
