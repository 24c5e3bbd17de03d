package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	pgerrors "github.com/matzehuels/printgraph/pkg/errors"
	"github.com/matzehuels/printgraph/pkg/printgraph"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var (
	validFormats    = []string{formatText, formatDOT, formatSVG}
	validColorModes = []string{colorAuto, colorAlways, colorNever}
)

// Config holds user defaults loaded from the TOML config file.
// Command-line flags take precedence over every field.
type Config struct {
	IndentWidth int    `toml:"indent_width"`
	Format      string `toml:"format"`
	Color       string `toml:"color"`
	Detailed    bool   `toml:"detailed"`
}

// SetDefaults fills zero-valued fields with their defaults.
func (c *Config) SetDefaults() {
	if c.IndentWidth == 0 {
		c.IndentWidth = printgraph.DefaultIndentWidth
	}
	if c.Format == "" {
		c.Format = formatText
	}
	if c.Color == "" {
		c.Color = colorAuto
	}
}

// Validate checks the config after defaults have been applied.
func (c Config) Validate() error {
	if err := pgerrors.ValidateIndentWidth(c.IndentWidth); err != nil {
		return err
	}
	if err := validateFormat(c.Format); err != nil {
		return err
	}
	return validateColor(c.Color)
}

func validateFormat(f string) error {
	if !slices.Contains(validFormats, f) {
		return pgerrors.New(pgerrors.ErrCodeInvalidFormat,
			"invalid format: %s (must be one of %s)", f, strings.Join(validFormats, ", "))
	}
	return nil
}

func validateColor(mode string) error {
	if !slices.Contains(validColorModes, mode) {
		return pgerrors.New(pgerrors.ErrCodeInvalidConfig,
			"invalid color mode: %s (must be one of %s)", mode, strings.Join(validColorModes, ", "))
	}
	return nil
}

// defaultConfigPath returns the config file location under configDir.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// loadConfig reads the config file at path. An empty path selects the
// default location, where a missing file is not an error. A missing file at
// an explicit path is. Unknown keys are rejected so typos do not pass
// silently.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			cfg.SetDefaults()
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cfg = Config{}
	case errors.Is(err, fs.ErrNotExist):
		return Config{}, pgerrors.Wrap(pgerrors.ErrCodeFileNotFound, err, "config file %s", path)
	case err != nil:
		return Config{}, pgerrors.Wrap(pgerrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, pgerrors.New(pgerrors.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
