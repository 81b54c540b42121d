package palette

import (
	"fmt"

	"hadalized/internal/color"
	"hadalized/pkg/errors"
)

// DefaultVersion tags palettes whose definitions carry no explicit
// version.
const DefaultVersion = "2.1"

// Meta holds the descriptive fields of a palette. It doubles as the
// metadata-only view templates use when they do not need colors.
type Meta struct {
	Name    string      `json:"name" mapstructure:"name" yaml:"name" toml:"name" validate:"required"`
	Desc    string      `json:"desc" mapstructure:"desc" yaml:"desc" toml:"desc"`
	Version string      `json:"version" mapstructure:"version" yaml:"version" toml:"version"`
	Mode    string      `json:"mode" mapstructure:"mode" yaml:"mode" toml:"mode" validate:"oneof=dark light"`
	Gamut   color.Space `json:"gamut" mapstructure:"gamut" yaml:"gamut" toml:"gamut" validate:"oneof=srgb display-p3"`
	Aliases []string    `json:"aliases" mapstructure:"aliases" yaml:"aliases" toml:"aliases"`
}

// Colors holds the five color maps of a palette. It doubles as the
// colors-only view.
type Colors struct {
	Hue    color.Hues      `json:"hue" mapstructure:"hue" yaml:"hue" toml:"hue"`
	Base   color.Bases     `json:"base" mapstructure:"base" yaml:"base" toml:"base"`
	Bright color.Hues      `json:"bright" mapstructure:"bright" yaml:"bright" toml:"bright"`
	HL     color.Hues      `json:"hl" mapstructure:"hl" yaml:"hl" toml:"hl"`
	GS     color.Grayscale `json:"gs" mapstructure:"gs" yaml:"gs" toml:"gs"`
}

// Palette aggregates metadata and color maps. The embedded Meta and
// Colors fields are the read-only split views. Values are treated as
// immutable: Parse and Project return new instances and never touch
// the receiver. The projection memo is per-instance, so its lifetime
// ends with the palette graph that owns it; instances are not safe
// for concurrent mutation.
type Palette struct {
	Meta   `mapstructure:",squash" yaml:",inline"`
	Colors `mapstructure:",squash" yaml:",inline"`

	parsed      bool
	parsedGamut color.Space
	projections map[color.FieldType]*Palette
}

// New assembles a palette, filling the version, gamut, and the shared
// bright, highlight, and grayscale maps when the definition leaves
// them out.
func New(meta Meta, colors Colors) *Palette {
	if meta.Version == "" {
		meta.Version = DefaultVersion
	}
	if meta.Gamut == "" {
		meta.Gamut = color.SpaceSRGB
	}
	if colors.Bright.Red.IsZero() {
		colors.Bright = color.BrightHues()
	}
	if colors.HL.Red.IsZero() {
		colors.HL = color.HighlightHues()
	}
	if colors.GS.W0.IsZero() {
		colors.GS = color.DefaultGrayscale()
	}
	return &Palette{Meta: meta, Colors: colors}
}

// Normalize fills defaults on a palette decoded from configuration.
func (p *Palette) Normalize(name string) {
	if p.Name == "" {
		p.Name = name
	}
	norm := New(p.Meta, p.Colors)
	p.Meta = norm.Meta
	p.Colors = norm.Colors
}

// IsParsed reports whether every slot holds a full ColorValue.
func (p *Palette) IsParsed() bool {
	return p.parsed
}

// ParsedGamut returns the gamut the palette was parsed against, empty
// when unparsed.
func (p *Palette) ParsedGamut() color.Space {
	return p.parsedGamut
}

// Parse returns a palette whose slots all hold full ColorValues fit to
// the given gamut; an empty gamut means the palette's declared one.
// Parsing an already-parsed palette for the same gamut returns the
// receiver itself, so repeated calls are O(1) and pointer-stable.
func (p *Palette) Parse(gamut color.Space) (*Palette, error) {
	g := gamut
	if g == "" {
		g = p.Gamut
	}
	if p.parsed && p.parsedGamut == g {
		return p, nil
	}

	out, err := p.mapHandler(color.NewParser(g))
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", p.Name, err)
	}
	out.parsed = true
	out.parsedGamut = g
	return out, nil
}

// Project reduces every slot to the given representation. The receiver
// must already be parsed: an unparsed palette has no ColorValues to
// extract from, and a previously projected palette is no longer
// parsed, so double projection fails the same way instead of silently
// re-wrapping. Results are memoized per kind on the receiver.
func (p *Palette) Project(kind color.FieldType) (*Palette, error) {
	if _, err := color.ParseFieldType(string(kind)); err != nil {
		return nil, err
	}
	if !p.parsed {
		return nil, errors.NewStateError("project", "projection requires a parsed palette")
	}
	if kind == color.FieldInfo {
		return p, nil
	}
	if cached, ok := p.projections[kind]; ok {
		return cached, nil
	}

	out, err := p.mapHandler(color.Extractor{Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", p.Name, err)
	}
	if p.projections == nil {
		p.projections = make(map[color.FieldType]*Palette)
	}
	p.projections[kind] = out
	return out, nil
}

// mapHandler applies a handler across all five color maps, producing a
// fresh palette with the same metadata and no memo state.
func (p *Palette) mapHandler(handler color.Handler) (*Palette, error) {
	out := &Palette{Meta: p.Meta}

	var err error
	if out.Hue, err = p.Hue.Map(handler); err != nil {
		return nil, fmt.Errorf("hue: %w", err)
	}
	if out.Base, err = p.Base.Map(handler); err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	if out.Bright, err = p.Bright.Map(handler); err != nil {
		return nil, fmt.Errorf("bright: %w", err)
	}
	if out.HL, err = p.HL.Map(handler); err != nil {
		return nil, fmt.Errorf("hl: %w", err)
	}
	if out.GS, err = p.GS.Map(handler); err != nil {
		return nil, fmt.Errorf("gs: %w", err)
	}
	return out, nil
}

// FieldType reports the shared mode of the color maps.
func (p *Palette) FieldType() color.FieldType {
	return p.Hue.FieldType()
}
