// Package config loads huepick's settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/balkashynov/huepick/internal/clipboard"
	"github.com/balkashynov/huepick/internal/color"
	"github.com/balkashynov/huepick/internal/state"
)

// Config holds the user's settings. Zero fields mean "use the default".
type Config struct {
	DefaultColor string `hcl:"default_color,optional" toml:"default_color"`
	Database     string `hcl:"database,optional" toml:"database"`
	List         string `hcl:"list,optional" toml:"list"`
	LogFile      string `hcl:"log_file,optional" toml:"log_file"`
	Verbosity    int    `hcl:"verbosity,optional" toml:"verbosity"`
	Language     string `hcl:"language,optional" toml:"language"`
	CopyFeedback string `hcl:"copy_feedback,optional" toml:"copy_feedback"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		DefaultColor: state.DefaultColor,
		List:         state.StorageKey,
		CopyFeedback: clipboard.DefaultFeedback.String(),
	}
}

// Feedback parses CopyFeedback, falling back to the default on bad input.
func (c *Config) Feedback() time.Duration {
	d, err := time.ParseDuration(c.CopyFeedback)
	if err != nil || d <= 0 {
		return clipboard.DefaultFeedback
	}
	return d
}

// Dir returns the directory searched for config.hcl and config.toml.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "huepick"), nil
}

// Load finds and reads the configuration file for the current user.
// config.hcl takes precedence over config.toml; with neither present the
// defaults are returned. It always returns a usable *Config, even if it also
// returns a non-nil error.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), fmt.Errorf("locating config directory: %w", err)
	}
	for _, name := range []string{"config.hcl", "config.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return LoadFile(path)
	}
	return Default(), nil
}

// LoadFile reads a single config file, choosing the format by extension.
func LoadFile(path string) (*Config, error) {
	c := Default()

	var err error
	switch filepath.Ext(path) {
	case ".hcl":
		err = decodeHCL(path, c)
	case ".toml":
		_, err = toml.DecodeFile(path, c)
	default:
		err = fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	c.sanitize()
	if err != nil {
		return c, fmt.Errorf("loading config %s: %w", path, err)
	}
	return c, nil
}

func decodeHCL(path string, c *Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	if diags := gohcl.DecodeBody(file.Body, buildEvalContext(), c); diags.HasErrors() {
		return fmt.Errorf("decoding HCL: %s", diags.Error())
	}
	return nil
}

// buildEvalContext exposes the process environment as env.NAME so paths can
// be written as "${env.HOME}/colors.db".
func buildEvalContext() *hcl.EvalContext {
	environ := os.Environ()
	vals := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(name) {
			continue
		}
		vals[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

func (c *Config) sanitize() {
	if !color.IsValid(c.DefaultColor) {
		c.DefaultColor = state.DefaultColor
	}
	if c.List == "" {
		c.List = state.StorageKey
	}
	switch c.Language {
	case "", "en", "zh":
	default:
		c.Language = ""
	}
}
