// Package config loads the optional alef.toml / alef.yaml project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames lists the project files probed in each directory, in order.
var FileNames = []string{"alef.toml", "alef.yaml", "alef.yml"}

// Config mirrors the project file. Zero values mean "not set".
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Lex         LexConfig         `toml:"lex" yaml:"lex"`
}

type DiagnosticsConfig struct {
	Theme       string `toml:"theme" yaml:"theme"`
	Width       int    `toml:"width" yaml:"width"`
	Color       string `toml:"color" yaml:"color"`
	MinSeverity string `toml:"min_severity" yaml:"min_severity"`
	Max         int    `toml:"max" yaml:"max"`
}

type LexConfig struct {
	Format   string `toml:"format" yaml:"format"`
	Comments bool   `toml:"comments" yaml:"comments"`
}

// Default returns the settings used without a project file.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{
			Theme:       "unicode",
			Width:       80,
			Color:       "auto",
			MinSeverity: "info",
		},
		Lex: LexConfig{Format: "plain"},
	}
}

// Project is a loaded project file.
type Project struct {
	Path   string
	Root   string
	Config Config
}

// Find walks up from startDir looking for one of FileNames.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the project file above startDir. ok is false
// when there is none; the returned project then carries Default().
func Discover(startDir string) (*Project, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return &Project{Config: Default()}, false, err
	}
	p, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return p, true, nil
}

// Load reads the project file at path. Values it leaves unset keep their
// defaults.
func Load(path string) (*Project, error) {
	// #nosec G304 -- path is a user supplied or discovered project file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	return &Project{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// Parse decodes data, choosing the format by the extension of name.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return Config{}, fmt.Errorf("%s: unknown keys: %s", name, strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", name, err)
		}
	default:
		return Config{}, fmt.Errorf("%s: unsupported config format (want .toml or .yaml)", name)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks enumerated values and bounds.
func (c Config) Validate() error {
	d := c.Diagnostics
	if !oneOf(d.Theme, "unicode", "ascii") {
		return fmt.Errorf("[diagnostics].theme: unknown value %q", d.Theme)
	}
	if !oneOf(d.Color, "auto", "on", "off") {
		return fmt.Errorf("[diagnostics].color: unknown value %q", d.Color)
	}
	if !oneOf(d.MinSeverity, "info", "warning", "error", "fatal") {
		return fmt.Errorf("[diagnostics].min_severity: unknown value %q", d.MinSeverity)
	}
	if d.Width < 20 {
		return fmt.Errorf("[diagnostics].width must be at least 20, got %d", d.Width)
	}
	if d.Max < 0 {
		return fmt.Errorf("[diagnostics].max must not be negative")
	}
	if !oneOf(c.Lex.Format, "plain", "pretty", "json", "msgpack", "dump") {
		return fmt.Errorf("[lex].format: unknown value %q", c.Lex.Format)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
