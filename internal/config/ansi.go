package config

// ANSIMap assigns each of the twelve hues a slot in the terminal's
// 16-color table. The defaults put the six primary hues in the normal
// slots 1-6 and their partners in the bright slots 9-14.
type ANSIMap struct {
	Red     int `mapstructure:"red" json:"red" toml:"red" yaml:"red" validate:"min=0,max=15"`
	Rose    int `mapstructure:"rose" json:"rose" toml:"rose" yaml:"rose" validate:"min=0,max=15"`
	Green   int `mapstructure:"green" json:"green" toml:"green" yaml:"green" validate:"min=0,max=15"`
	Lime    int `mapstructure:"lime" json:"lime" toml:"lime" yaml:"lime" validate:"min=0,max=15"`
	Yellow  int `mapstructure:"yellow" json:"yellow" toml:"yellow" yaml:"yellow" validate:"min=0,max=15"`
	Orange  int `mapstructure:"orange" json:"orange" toml:"orange" yaml:"orange" validate:"min=0,max=15"`
	Blue    int `mapstructure:"blue" json:"blue" toml:"blue" yaml:"blue" validate:"min=0,max=15"`
	Azure   int `mapstructure:"azure" json:"azure" toml:"azure" yaml:"azure" validate:"min=0,max=15"`
	Magenta int `mapstructure:"magenta" json:"magenta" toml:"magenta" yaml:"magenta" validate:"min=0,max=15"`
	Violet  int `mapstructure:"violet" json:"violet" toml:"violet" yaml:"violet" validate:"min=0,max=15"`
	Cyan    int `mapstructure:"cyan" json:"cyan" toml:"cyan" yaml:"cyan" validate:"min=0,max=15"`
	Mint    int `mapstructure:"mint" json:"mint" toml:"mint" yaml:"mint" validate:"min=0,max=15"`
}

// DefaultANSIMap returns the stock hue-to-slot assignment.
func DefaultANSIMap() ANSIMap {
	return ANSIMap{
		Red: 1, Rose: 9,
		Green: 2, Lime: 10,
		Yellow: 3, Orange: 11,
		Blue: 4, Azure: 12,
		Magenta: 5, Violet: 13,
		Cyan: 6, Mint: 14,
	}
}

// names maps assigned slots back to hue names.
func (m ANSIMap) names() map[int]string {
	return map[int]string{
		m.Red:     "red",
		m.Rose:    "rose",
		m.Green:   "green",
		m.Lime:    "lime",
		m.Yellow:  "yellow",
		m.Orange:  "orange",
		m.Blue:    "blue",
		m.Azure:   "azure",
		m.Magenta: "magenta",
		m.Violet:  "violet",
		m.Cyan:    "cyan",
		m.Mint:    "mint",
	}
}

// NameFor returns the hue assigned to the given ANSI slot.
func (m ANSIMap) NameFor(idx int) (string, bool) {
	name, ok := m.names()[idx]
	return name, ok
}

// Pairing lists the (normal, bright) hue pairs for ANSI slots 1-6,
// each paired with the hue eight slots up.
func (m ANSIMap) Pairing() [][2]string {
	names := m.names()
	pairs := make([][2]string, 0, 6)
	for i := 1; i <= 6; i++ {
		pairs = append(pairs, [2]string{names[i], names[i+8]})
	}
	return pairs
}

// TerminalConfig groups terminal emulator related settings.
type TerminalConfig struct {
	ANSI ANSIMap `mapstructure:"ansi" json:"ansi" toml:"ansi" yaml:"ansi"`
}

// DefaultTerminal returns the terminal settings with the stock ANSI
// assignment.
func DefaultTerminal() TerminalConfig {
	return TerminalConfig{ANSI: DefaultANSIMap()}
}
