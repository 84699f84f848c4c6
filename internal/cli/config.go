package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file read by every command. Flags override the
// values it carries.
type Config struct {
	Renderer string       `yaml:"renderer"`
	Format   string       `yaml:"format"`
	Output   string       `yaml:"output"`
	Source   string       `yaml:"source"`
	Preset   string       `yaml:"preset"`
	Theme    *ThemeConfig `yaml:"theme"`
}

// ThemeConfig describes a single theme manifest plus the variant to use.
type ThemeConfig struct {
	Name      string                   `yaml:"name"`
	Variant   string                   `yaml:"variant"`
	Version   string                   `yaml:"version"`
	Tokens    map[string]string        `yaml:"tokens"`
	Templates map[string]string        `yaml:"templates"`
	Assets    AssetsConfig             `yaml:"assets"`
	Variants  map[string]VariantConfig `yaml:"variants"`
}

// AssetsConfig mirrors theme.Assets.
type AssetsConfig struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// VariantConfig mirrors theme.Variant.
type VariantConfig struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    AssetsConfig      `yaml:"assets"`
}

// LoadConfig reads path. An empty path yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config document, rejecting unknown keys.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if cfg.Theme != nil && strings.TrimSpace(cfg.Theme.Name) == "" {
		return Config{}, errors.New("config: theme.name is required")
	}
	return cfg, nil
}

// Manifest converts the theme section into a go-theme manifest.
func (c *ThemeConfig) Manifest() *theme.Manifest {
	if c == nil {
		return nil
	}
	manifest := &theme.Manifest{
		Name:      c.Name,
		Version:   c.Version,
		Tokens:    c.Tokens,
		Templates: c.Templates,
		Assets:    c.Assets.toTheme(),
	}
	if len(c.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(c.Variants))
		for name, variant := range c.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    variant.Assets.toTheme(),
			}
		}
	}
	return manifest
}

func (a AssetsConfig) toTheme() theme.Assets {
	return theme.Assets{Prefix: a.Prefix, Files: a.Files}
}
