// Package config loads the optional aurders.yml run configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/miteshhc/aurders/internal/template"
)

// DefaultPath is looked up when no explicit config path is given.
const DefaultPath = "aurders.yml"

// Maintainer identifies the packager named in generated descriptors.
type Maintainer struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Config carries per-maintainer defaults for a run.
type Config struct {
	Maintainer  Maintainer `yaml:"maintainer"`
	TemplateDir string     `yaml:"template_dir"`
	BundleURL   string     `yaml:"bundle_url"`
	OutputDir   string     `yaml:"output_dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TemplateDir: "templates",
		BundleURL:   template.DefaultBundleURL,
		OutputDir:   "aurders",
	}
}

// Load reads path and overlays it on Default. A missing file is not an
// error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
