package color

import (
	"encoding/json"
	"fmt"

	"hadalized/pkg/errors"
)

// FieldType names what the slots of a color map currently hold. The
// zero value means the map is untransformed raw literals.
type FieldType string

const (
	// FieldNone marks a map of raw literals that has not been mapped.
	FieldNone FieldType = ""
	// FieldInfo marks slots holding full ColorValues.
	FieldInfo FieldType = "info"
	// FieldHex marks slots reduced to hex strings.
	FieldHex FieldType = "hex"
	// FieldCSS marks slots reduced to CSS strings.
	FieldCSS FieldType = "css"
	// FieldOKLCH marks slots reduced to OKLCH strings.
	FieldOKLCH FieldType = "oklch"
)

// ParseFieldType validates a field type name.
func ParseFieldType(s string) (FieldType, error) {
	switch FieldType(s) {
	case FieldInfo, FieldHex, FieldCSS, FieldOKLCH:
		return FieldType(s), nil
	default:
		return FieldNone, errors.NewValidationError("color_type", fmt.Sprintf("unknown color field type %q", s), nil)
	}
}

type fieldKind uint8

const (
	kindLiteral fieldKind = iota
	kindParsed
	kindExtracted
)

// Field is one color slot of a map. It holds exactly one of: a raw
// literal string, a parsed ColorValue, or a single representation
// string extracted from a parsed value. The discriminant is private;
// transforms go through handlers so a map's slots stay uniform.
type Field struct {
	kind  fieldKind
	str   string
	value *ColorValue
}

// Literal wraps a raw color literal.
func Literal(s string) Field {
	return Field{kind: kindLiteral, str: s}
}

// Parsed wraps a derived ColorValue.
func Parsed(v *ColorValue) Field {
	return Field{kind: kindParsed, value: v}
}

// Extracted wraps a single representation string taken from a
// ColorValue.
func Extracted(s string) Field {
	return Field{kind: kindExtracted, str: s}
}

// IsParsed reports whether the slot holds a full ColorValue.
func (f Field) IsParsed() bool {
	return f.kind == kindParsed
}

// IsZero reports whether the slot was never assigned.
func (f Field) IsZero() bool {
	return f.kind == kindLiteral && f.str == "" && f.value == nil
}

// Value returns the parsed ColorValue, or nil for literal and
// extracted slots.
func (f Field) Value() *ColorValue {
	return f.value
}

// String renders the slot for templates: the literal or extracted
// text, or the CSS form of a parsed value.
func (f Field) String() string {
	if f.kind == kindParsed && f.value != nil {
		return f.value.CSS
	}
	return f.str
}

// MarshalJSON emits literal and extracted slots as JSON strings and
// parsed slots as the full ColorValue object, mirroring how each form
// is rendered into template contexts.
func (f Field) MarshalJSON() ([]byte, error) {
	if f.kind == kindParsed {
		return json.Marshal(f.value)
	}
	return json.Marshal(f.str)
}

// UnmarshalJSON accepts either a literal string or a ColorValue
// object.
func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Literal(s)
		return nil
	}
	var v ColorValue
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Parsed(&v)
	return nil
}

// MarshalText renders the slot's raw definition, used when dumping
// configuration to TOML. Parsed slots fall back to their literal.
func (f Field) MarshalText() ([]byte, error) {
	if f.kind == kindParsed && f.value != nil {
		return []byte(f.value.Raw), nil
	}
	return []byte(f.str), nil
}

// UnmarshalText reads a raw literal, used when loading configuration.
func (f *Field) UnmarshalText(text []byte) error {
	*f = Literal(string(text))
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (f Field) MarshalYAML() (any, error) {
	if f.kind == kindParsed {
		return f.value, nil
	}
	return f.str, nil
}

// Handler transforms one slot at a time while a map is re-derived. The
// resulting map adopts the handler's field type as its mode.
type Handler interface {
	Apply(Field) (Field, error)
	FieldType() FieldType
}

// Apply parses a slot into a full ColorValue. Already-parsed slots
// pass through unchanged, so parsing is idempotent. Extracted strings
// are themselves valid literals and re-parse cleanly.
func (p Parser) Apply(f Field) (Field, error) {
	if f.IsParsed() {
		return f, nil
	}
	v, err := p.Parse(f.str)
	if err != nil {
		return Field{}, err
	}
	return Parsed(v), nil
}

// FieldType marks maps transformed by a Parser as holding full info.
func (p Parser) FieldType() FieldType {
	return FieldInfo
}

// Extractor reduces parsed slots to a single representation string.
type Extractor struct {
	Kind FieldType
}

// NewExtractor validates the target representation.
func NewExtractor(kind string) (Extractor, error) {
	ft, err := ParseFieldType(kind)
	if err != nil {
		return Extractor{}, err
	}
	return Extractor{Kind: ft}, nil
}

// IsIdentity reports whether the extractor passes parsed slots through
// unchanged.
func (e Extractor) IsIdentity() bool {
	return e.Kind == FieldInfo
}

// Apply extracts the target representation from a parsed slot. A slot
// that is not parsed fails with a StateError: extracting twice in a
// row is a pipeline bug, not a recoverable condition.
func (e Extractor) Apply(f Field) (Field, error) {
	if !f.IsParsed() {
		return Field{}, errors.NewStateError("extract", "slot does not hold a parsed color value")
	}
	if e.IsIdentity() {
		return f, nil
	}
	v := f.Value()
	switch e.Kind {
	case FieldHex:
		return Extracted(v.Hex), nil
	case FieldCSS:
		return Extracted(v.CSS), nil
	case FieldOKLCH:
		return Extracted(v.OKLCH), nil
	default:
		return Field{}, errors.NewValidationError("color_type", fmt.Sprintf("cannot extract field type %q", e.Kind), nil)
	}
}

// FieldType reports the representation the extractor produces.
func (e Extractor) FieldType() FieldType {
	return e.Kind
}
