package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/miteshhc/aurders/internal/cli"
	"github.com/miteshhc/aurders/internal/config"
)

func main() {
	fs := flag.NewFlagSet("aurders", flag.ExitOnError)
	configPath := fs.String("config", config.DefaultPath, "run configuration file")
	templateDir := fs.String("templates", "", "template directory (overrides config)")
	bundleURL := fs.String("bundle-url", "", "template bundle URL (overrides config)")
	outputDir := fs.String("output", "", "archive output directory (overrides config)")
	purl := fs.String("purl", "", "prefill package name and version from a Package URL")
	fetchTemplates := fs.Bool("fetch-templates", false, "fetch the template bundle even when templates exist")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `aurders - interactive AUR packaging assistant

Generates a PKGBUILD and .SRCINFO in the working directory from answers to
a series of prompts, optionally building a source tarball and computing its
checksum on the way.

Usage:
  aurders [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	// ExitOnError: Parse only returns on success.
	_ = fs.Parse(os.Args[1:])

	opts := cli.Options{
		ConfigPath:     *configPath,
		TemplateDir:    *templateDir,
		BundleURL:      *bundleURL,
		OutputDir:      *outputDir,
		PURL:           *purl,
		FetchTemplates: *fetchTemplates,
	}
	if err := cli.Run(context.Background(), opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
