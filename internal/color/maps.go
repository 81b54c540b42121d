package color

import (
	"fmt"
)

// slot pairs a stable slot name with a pointer into a map instance.
// The per-map slot tables below are the explicit schema every dynamic
// iteration in the system runs over: transform application, slot
// lookup by name, and ordered listing all share it, so declaration
// order is fixed at compile time.
type slot struct {
	name  string
	field *Field
}

// Map is the shared behavior of the named color containers.
type Map interface {
	FieldType() FieldType
	Slots() []string
	Slot(name string) (Field, bool)
}

func applySlots(slots []slot, h Handler) error {
	for _, s := range slots {
		next, err := h.Apply(*s.field)
		if err != nil {
			return fmt.Errorf("slot %s: %w", s.name, err)
		}
		*s.field = next
	}
	return nil
}

func slotNames(slots []slot) []string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.name
	}
	return names
}

func lookupSlot(slots []slot, name string) (Field, bool) {
	for _, s := range slots {
		if s.name == name {
			return *s.field, true
		}
	}
	return Field{}, false
}

// Hues is the map of the twelve accent hues. The six odd ANSI slots
// (red green yellow blue magenta cyan) pair with six "bright" partners
// (rose lime orange azure violet mint) drawn from the same map.
type Hues struct {
	Red     Field `json:"red" mapstructure:"red" yaml:"red" toml:"red"`
	Rose    Field `json:"rose" mapstructure:"rose" yaml:"rose" toml:"rose"`
	Orange  Field `json:"orange" mapstructure:"orange" yaml:"orange" toml:"orange"`
	Yellow  Field `json:"yellow" mapstructure:"yellow" yaml:"yellow" toml:"yellow"`
	Lime    Field `json:"lime" mapstructure:"lime" yaml:"lime" toml:"lime"`
	Green   Field `json:"green" mapstructure:"green" yaml:"green" toml:"green"`
	Mint    Field `json:"mint" mapstructure:"mint" yaml:"mint" toml:"mint"`
	Cyan    Field `json:"cyan" mapstructure:"cyan" yaml:"cyan" toml:"cyan"`
	Azure   Field `json:"azure" mapstructure:"azure" yaml:"azure" toml:"azure"`
	Blue    Field `json:"blue" mapstructure:"blue" yaml:"blue" toml:"blue"`
	Violet  Field `json:"violet" mapstructure:"violet" yaml:"violet" toml:"violet"`
	Magenta Field `json:"magenta" mapstructure:"magenta" yaml:"magenta" toml:"magenta"`

	fieldType FieldType
}

func (h *Hues) slots() []slot {
	return []slot{
		{"red", &h.Red},
		{"rose", &h.Rose},
		{"orange", &h.Orange},
		{"yellow", &h.Yellow},
		{"lime", &h.Lime},
		{"green", &h.Green},
		{"mint", &h.Mint},
		{"cyan", &h.Cyan},
		{"azure", &h.Azure},
		{"blue", &h.Blue},
		{"violet", &h.Violet},
		{"magenta", &h.Magenta},
	}
}

// Map applies a handler to every slot, returning a new Hues whose mode
// is the handler's field type. The receiver is never modified.
func (h Hues) Map(handler Handler) (Hues, error) {
	out := h
	if err := applySlots(out.slots(), handler); err != nil {
		return Hues{}, err
	}
	out.fieldType = handler.FieldType()
	return out, nil
}

// FieldType reports what the slots currently hold.
func (h Hues) FieldType() FieldType { return h.fieldType }

// Slots lists slot names in declaration order.
func (h Hues) Slots() []string { return slotNames(h.slots()) }

// Slot returns the named slot.
func (h Hues) Slot(name string) (Field, bool) { return lookupSlot(h.slots(), name) }

// Bases is the map of background and foreground ramps. bg is the main
// background with bg1-bg6 stepping toward the foreground; fg is the
// main foreground with fg1-fg3 stepping back.
type Bases struct {
	BG  Field `json:"bg" mapstructure:"bg" yaml:"bg" toml:"bg"`
	BG1 Field `json:"bg1" mapstructure:"bg1" yaml:"bg1" toml:"bg1"`
	BG2 Field `json:"bg2" mapstructure:"bg2" yaml:"bg2" toml:"bg2"`
	BG3 Field `json:"bg3" mapstructure:"bg3" yaml:"bg3" toml:"bg3"`
	BG4 Field `json:"bg4" mapstructure:"bg4" yaml:"bg4" toml:"bg4"`
	BG5 Field `json:"bg5" mapstructure:"bg5" yaml:"bg5" toml:"bg5"`
	BG6 Field `json:"bg6" mapstructure:"bg6" yaml:"bg6" toml:"bg6"`
	FG  Field `json:"fg" mapstructure:"fg" yaml:"fg" toml:"fg"`
	FG1 Field `json:"fg1" mapstructure:"fg1" yaml:"fg1" toml:"fg1"`
	FG2 Field `json:"fg2" mapstructure:"fg2" yaml:"fg2" toml:"fg2"`
	FG3 Field `json:"fg3" mapstructure:"fg3" yaml:"fg3" toml:"fg3"`

	fieldType FieldType
}

func (b *Bases) slots() []slot {
	return []slot{
		{"bg", &b.BG},
		{"bg1", &b.BG1},
		{"bg2", &b.BG2},
		{"bg3", &b.BG3},
		{"bg4", &b.BG4},
		{"bg5", &b.BG5},
		{"bg6", &b.BG6},
		{"fg", &b.FG},
		{"fg1", &b.FG1},
		{"fg2", &b.FG2},
		{"fg3", &b.FG3},
	}
}

// Map applies a handler to every slot, returning a new Bases whose
// mode is the handler's field type.
func (b Bases) Map(handler Handler) (Bases, error) {
	out := b
	if err := applySlots(out.slots(), handler); err != nil {
		return Bases{}, err
	}
	out.fieldType = handler.FieldType()
	return out, nil
}

// FieldType reports what the slots currently hold.
func (b Bases) FieldType() FieldType { return b.fieldType }

// Slots lists slot names in declaration order.
func (b Bases) Slots() []string { return slotNames(b.slots()) }

// Slot returns the named slot.
func (b Bases) Slot(name string) (Field, bool) { return lookupSlot(b.slots(), name) }

// Grayscale is the shared achromatic ramp from black (w0) to white
// (w100).
type Grayscale struct {
	W0   Field `json:"w0" mapstructure:"w0" yaml:"w0" toml:"w0"`
	W10  Field `json:"w10" mapstructure:"w10" yaml:"w10" toml:"w10"`
	W20  Field `json:"w20" mapstructure:"w20" yaml:"w20" toml:"w20"`
	W30  Field `json:"w30" mapstructure:"w30" yaml:"w30" toml:"w30"`
	W40  Field `json:"w40" mapstructure:"w40" yaml:"w40" toml:"w40"`
	W50  Field `json:"w50" mapstructure:"w50" yaml:"w50" toml:"w50"`
	W60  Field `json:"w60" mapstructure:"w60" yaml:"w60" toml:"w60"`
	W70  Field `json:"w70" mapstructure:"w70" yaml:"w70" toml:"w70"`
	W80  Field `json:"w80" mapstructure:"w80" yaml:"w80" toml:"w80"`
	W90  Field `json:"w90" mapstructure:"w90" yaml:"w90" toml:"w90"`
	W100 Field `json:"w100" mapstructure:"w100" yaml:"w100" toml:"w100"`

	fieldType FieldType
}

func (g *Grayscale) slots() []slot {
	return []slot{
		{"w0", &g.W0},
		{"w10", &g.W10},
		{"w20", &g.W20},
		{"w30", &g.W30},
		{"w40", &g.W40},
		{"w50", &g.W50},
		{"w60", &g.W60},
		{"w70", &g.W70},
		{"w80", &g.W80},
		{"w90", &g.W90},
		{"w100", &g.W100},
	}
}

// Map applies a handler to every slot, returning a new Grayscale whose
// mode is the handler's field type.
func (g Grayscale) Map(handler Handler) (Grayscale, error) {
	out := g
	if err := applySlots(out.slots(), handler); err != nil {
		return Grayscale{}, err
	}
	out.fieldType = handler.FieldType()
	return out, nil
}

// FieldType reports what the slots currently hold.
func (g Grayscale) FieldType() FieldType { return g.fieldType }

// Slots lists slot names in declaration order.
func (g Grayscale) Slots() []string { return slotNames(g.slots()) }

// Slot returns the named slot.
func (g Grayscale) Slot(name string) (Field, bool) { return lookupSlot(g.slots(), name) }
