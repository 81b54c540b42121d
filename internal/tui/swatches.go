// Package tui renders palettes for terminal display: swatch rows for
// interactive views and plain tables for piped output.
package tui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"hadalized/internal/color"
	"hadalized/internal/palette"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(8)

	metaStyle = lipgloss.NewStyle().
			Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true)
)

// blockWidth is the printed width of one swatch cell.
const blockWidth = 3

// Summary renders the descriptive header for a palette.
func Summary(p *palette.Palette) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	if p.Desc != "" {
		b.WriteString(" ")
		b.WriteString(metaStyle.Render(p.Desc))
	}
	b.WriteString("\n")
	meta := fmt.Sprintf("mode %s · gamut %s · version %s", p.Mode, p.Gamut, p.Version)
	if len(p.Aliases) > 0 {
		meta += " · aliases " + strings.Join(p.Aliases, ", ")
	}
	b.WriteString(metaStyle.Render(meta))
	b.WriteString("\n")
	return b.String()
}

// SwatchRows renders one row of colored blocks per color map. The
// palette must be parsed; unparsed slots render as gaps.
func SwatchRows(p *palette.Palette) string {
	rows := []struct {
		label string
		m     interface {
			Slots() []string
			Slot(string) (color.Field, bool)
		}
	}{
		{"base", p.Base},
		{"hue", p.Hue},
		{"bright", p.Bright},
		{"hl", p.HL},
		{"gs", p.GS},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		for _, name := range row.m.Slots() {
			f, _ := row.m.Slot(name)
			b.WriteString(swatch(f))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// swatch renders a single colored cell for a slot value.
func swatch(f color.Field) string {
	v := f.Value()
	if v == nil {
		return strings.Repeat(" ", blockWidth)
	}
	hex := v.Hex
	if len(hex) > 7 {
		// lipgloss colors carry no alpha channel.
		hex = hex[:7]
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", blockWidth))
}

// PaletteTable renders slot names and values as a plain aligned table.
// Parsed slots list their derived hex, css, and oklch forms.
func PaletteTable(p *palette.Palette) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	if p.IsParsed() {
		fmt.Fprintln(tw, "SLOT\tHEX\tCSS\tOKLCH")
	} else {
		fmt.Fprintln(tw, "SLOT\tVALUE")
	}

	maps := []struct {
		prefix string
		m      interface {
			Slots() []string
			Slot(string) (color.Field, bool)
		}
	}{
		{"base", p.Base},
		{"hue", p.Hue},
		{"bright", p.Bright},
		{"hl", p.HL},
		{"gs", p.GS},
	}

	for _, entry := range maps {
		for _, name := range entry.m.Slots() {
			f, _ := entry.m.Slot(name)
			slot := entry.prefix + "." + name
			if v := f.Value(); v != nil {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", slot, v.Hex, v.CSS, v.OKLCH)
			} else {
				fmt.Fprintf(tw, "%s\t%s\n", slot, f.String())
			}
		}
	}

	tw.Flush()
	return b.String()
}
