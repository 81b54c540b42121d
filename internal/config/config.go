package config

import (
	"sort"

	"hadalized/internal/color"
	"hadalized/internal/palette"
	"hadalized/pkg/errors"
)

// Config is the full application configuration: runtime options plus
// palette definitions, build directives, and terminal settings. A
// Config is also the context full-context templates render against.
type Config struct {
	Options `mapstructure:",squash" yaml:",inline"`

	// Builds lists the build directives in declaration order. A run
	// processes them in exactly this order.
	Builds []BuildDirective `mapstructure:"builds" json:"builds" toml:"builds" yaml:"builds" validate:"dive"`

	// Palettes maps palette keys to their definitions. User config
	// entries extend the built-in set; an entry reusing a built-in key
	// replaces that palette.
	Palettes map[string]*palette.Palette `mapstructure:"palettes" json:"palettes" toml:"palettes" yaml:"palettes" validate:"dive"`

	// Terminal holds the hue-to-ANSI-slot assignment used by terminal
	// theme templates.
	Terminal TerminalConfig `mapstructure:"terminal" json:"terminal" toml:"terminal" yaml:"terminal"`

	lookup map[string]*palette.Palette
}

// New returns the built-in configuration: the four stock palettes,
// five build directives, and the default terminal mapping.
func New() *Config {
	cfg := &Config{
		Options:  DefaultOptions(),
		Builds:   DefaultBuilds(),
		Palettes: DefaultPalettes(),
		Terminal: DefaultTerminal(),
	}
	cfg.buildLookup()
	return cfg
}

// buildLookup indexes palettes by map key, name, and alias.
func (c *Config) buildLookup() {
	c.lookup = make(map[string]*palette.Palette, len(c.Palettes)*2)
	for key, p := range c.Palettes {
		c.lookup[key] = p
		c.lookup[p.Name] = p
		for _, alias := range p.Aliases {
			c.lookup[alias] = p
		}
	}
}

// GetPalette resolves a palette by map key, name, or alias.
func (c *Config) GetPalette(name string) (*palette.Palette, error) {
	if p, ok := c.lookup[name]; ok {
		return p, nil
	}
	return nil, errors.NewNotFoundError("palette", name)
}

// PaletteNames returns the palette map keys in sorted order.
func (c *Config) PaletteNames() []string {
	names := make([]string, 0, len(c.Palettes))
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetBuild returns the directive with the given name.
func (c *Config) GetBuild(name string) (BuildDirective, error) {
	for _, b := range c.Builds {
		if b.Name == name {
			return b, nil
		}
	}
	return BuildDirective{}, errors.NewNotFoundError("build", name)
}

// ParsePalettes returns a configuration whose palettes are all parsed
// against their declared gamuts. The receiver is left untouched.
func (c *Config) ParsePalettes() (*Config, error) {
	out := c.clone()
	for key, p := range c.Palettes {
		parsed, err := p.Parse("")
		if err != nil {
			return nil, err
		}
		out.Palettes[key] = parsed
	}
	out.buildLookup()
	return out, nil
}

// Project reduces every palette to the given representation. The
// palettes must have been parsed first.
func (c *Config) Project(kind color.FieldType) (*Config, error) {
	out := c.clone()
	for key, p := range c.Palettes {
		projected, err := p.Project(kind)
		if err != nil {
			return nil, err
		}
		out.Palettes[key] = projected
	}
	out.buildLookup()
	return out, nil
}

// Fingerprint returns the digest-stable subset of the configuration.
// Runtime options are excluded so flag changes never invalidate cached
// builds.
func (c *Config) Fingerprint() any {
	return struct {
		Builds   []BuildDirective            `json:"builds"`
		Palettes map[string]*palette.Palette `json:"palettes"`
		Terminal TerminalConfig              `json:"terminal"`
	}{c.Builds, c.Palettes, c.Terminal}
}

func (c *Config) clone() *Config {
	out := &Config{
		Options:  c.Options,
		Builds:   append([]BuildDirective(nil), c.Builds...),
		Palettes: make(map[string]*palette.Palette, len(c.Palettes)),
		Terminal: c.Terminal,
	}
	for k, v := range c.Palettes {
		out.Palettes[k] = v
	}
	return out
}
