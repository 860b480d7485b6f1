package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-cooktex/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cooktex.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `template:
  dir: ./latex
output:
  dir: ./build
units:
  system: metric
  file: ./units.yml
`)

		cfg, err := config.LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Template.Dir != "./latex" {
			t.Errorf("Template.Dir = %q, want ./latex", cfg.Template.Dir)
		}
		if cfg.Output.Dir != "./build" {
			t.Errorf("Output.Dir = %q, want ./build", cfg.Output.Dir)
		}
		if cfg.Units.System != "metric" || cfg.Units.File != "./units.yml" {
			t.Errorf("Units = %+v", cfg.Units)
		}
	})

	t.Run("partial config keeps zero values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "output:\n  dir: ./out\n")

		cfg, err := config.LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "./out" {
			t.Errorf("Output.Dir = %q, want ./out", cfg.Output.Dir)
		}
		if cfg.Template.Dir != "" || cfg.Units.System != "" {
			t.Errorf("unexpected non-zero fields: %+v", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "template:\n  dir: ./latex\n  engine: xelatex\n")

		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "template: [\n")

		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})
}
