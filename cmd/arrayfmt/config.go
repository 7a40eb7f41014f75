package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"arrayfmt/internal/directive"
	"arrayfmt/internal/driver"
)

const configFileName = "arrayfmt.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Format formatConfig `toml:"format"`
}

// formatConfig mirrors the [format] table. The two layout options are
// decoded untyped so that a wrong type is reported with the option name.
type formatConfig struct {
	WrapThreshold   any      `toml:"wrap_threshold"`
	ElementsPerLine any      `toml:"elements_per_line"`
	IndentWidth     int      `toml:"indent_width"`
	UseTabs         bool     `toml:"use_tabs"`
	Extensions      []string `toml:"extensions"`
	Jobs            int      `toml:"jobs"`
	Cache           *bool    `toml:"cache"`
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest reads explicitPath, or the nearest arrayfmt.toml above
// startDir when explicitPath is empty. ok is false when no file was found.
func loadProjectManifest(explicitPath, startDir string) (*projectManifest, bool, error) {
	manifestPath := explicitPath
	if manifestPath == "" {
		path, ok, err := findConfigFile(startDir)
		if err != nil || !ok {
			return nil, ok, err
		}
		manifestPath = path
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return projectConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Format.IndentWidth < 0 {
		return projectConfig{}, fmt.Errorf("%s: [format].indent_width must not be negative", path)
	}
	if cfg.Format.Jobs < 0 {
		return projectConfig{}, fmt.Errorf("%s: [format].jobs must not be negative", path)
	}
	return cfg, nil
}

// apply copies the configured values into opts. Layout options are
// validated here; the returned error is the *directive.ConfigError.
func (c formatConfig) apply(opts *driver.FormatOptions) error {
	if c.WrapThreshold != nil {
		n, err := directive.ParseThresholdOption(c.WrapThreshold)
		if err != nil {
			return err
		}
		opts.Options.WrapThreshold = n
	}
	if c.ElementsPerLine != nil {
		counts, err := directive.ParseElementsPerLineOption(c.ElementsPerLine)
		if err != nil {
			return err
		}
		opts.Options.ElementsPerLine = counts
	}
	if c.IndentWidth > 0 {
		opts.Options.IndentWidth = c.IndentWidth
	}
	opts.Options.UseTabs = c.UseTabs
	if len(c.Extensions) > 0 {
		exts := make([]string, len(c.Extensions))
		for i, e := range c.Extensions {
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			exts[i] = e
		}
		opts.Extensions = exts
	}
	if c.Jobs > 0 {
		opts.Jobs = c.Jobs
	}
	return nil
}

// cacheEnabled reports the [format].cache setting, true when unset.
func (c formatConfig) cacheEnabled() bool {
	return c.Cache == nil || *c.Cache
}
