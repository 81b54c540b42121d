package config

import (
	"path"
	"path/filepath"
	"strings"

	"hadalized/internal/color"
)

// ContextType selects what a build directive exposes to its template.
type ContextType string

const (
	// ContextPalette renders the template once per palette, with that
	// palette as the context.
	ContextPalette ContextType = "palette"

	// ContextFull renders the template once, with the whole
	// configuration as the context.
	ContextFull ContextType = "full"
)

// BuildDirective describes one family of theme files: which template
// to render, with what context and color representation, and where the
// output lands relative to the build directory.
type BuildDirective struct {
	// Name is the application name or theme category. It doubles as
	// the default output subdirectory and is the key the include
	// filters match against.
	Name string `mapstructure:"name" json:"name" toml:"name" yaml:"name" validate:"required"`

	// Subdir overrides the output subdirectory. Defaults to Name.
	Subdir string `mapstructure:"subdir" json:"subdir,omitempty" toml:"subdir,omitempty" yaml:"subdir,omitempty"`

	// Template is the template filename, relative to the template
	// search directories.
	Template string `mapstructure:"template" json:"template" toml:"template" yaml:"template" validate:"required"`

	// Filename is the output filename pattern. "{context.name}"
	// expands to the context palette's name and a trailing ".{ext}"
	// inherits the template's extension. Palette-context builds
	// default to "{context.name}.{ext}", full-context builds default
	// to the template name.
	Filename string `mapstructure:"filename" json:"filename,omitempty" toml:"filename,omitempty" yaml:"filename,omitempty"`

	// ContextType chooses between per-palette and whole-config
	// rendering.
	ContextType ContextType `mapstructure:"context_type" json:"context_type" toml:"context_type" yaml:"context_type" validate:"oneof=palette full"`

	// ColorType is the representation palette colors are reduced to
	// before rendering.
	ColorType color.FieldType `mapstructure:"color_type" json:"color_type" toml:"color_type" yaml:"color_type" validate:"oneof=info hex css oklch"`
}

// Normalize fills the defaulted fields of a directive decoded from
// configuration.
func (d *BuildDirective) Normalize() {
	if d.ContextType == "" {
		d.ContextType = ContextPalette
	}
	if d.ColorType == "" {
		d.ColorType = color.FieldHex
	}
}

// pattern resolves the filename pattern, applying the per-context
// default and template extension inheritance.
func (d BuildDirective) pattern() string {
	p := d.Filename
	if p == "" {
		if d.ContextType == ContextFull {
			p = d.Template
		} else {
			p = "{context.name}.{ext}"
		}
	}
	if strings.HasSuffix(p, ".{ext}") {
		p = strings.TrimSuffix(p, ".{ext}") + path.Ext(d.Template)
	}
	return strings.TrimRight(p, ".")
}

// FormatPath returns the output path for one rendering, relative to
// the build directory.
func (d BuildDirective) FormatPath(contextName string) string {
	name := strings.ReplaceAll(d.pattern(), "{context.name}", contextName)
	name = strings.TrimRight(name, ".")
	dir := d.Subdir
	if dir == "" {
		dir = d.Name
	}
	return filepath.Join(dir, name)
}
