package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hadalized/internal/tui"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewDetail:
		return m.renderDetailView()
	default:
		return m.renderListView()
	}
}

// renderListView renders the palette list
func (m Model) renderListView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	for i, key := range m.keys {
		content.WriteString(m.renderPaletteItem(i, key, i == m.cursor))
		content.WriteString("\n")
	}

	hints := []string{
		"↑/↓: navigate",
		"enter: preview",
		"q: quit",
	}
	content.WriteString(footerStyle.Render(strings.Join(hints, "  •  ")))

	return content.String()
}

// renderHeader renders the title bar with the palette count
func (m Model) renderHeader() string {
	title := titleStyle.Render("hadalized palettes")
	summary := metaStyle.Render(fmt.Sprintf("%d palettes configured", len(m.keys)))

	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, summary))
}

// renderPaletteItem renders a single palette list entry
func (m Model) renderPaletteItem(index int, key string, selected bool) string {
	p := m.items[key]

	number := fmt.Sprintf("%d.", index+1)
	name := lipgloss.NewStyle().Bold(true).Render(key)
	meta := metaStyle.Render(fmt.Sprintf("%s · %s", p.Mode, p.Gamut))

	desc := p.Desc
	if desc == "" {
		desc = metaStyle.Render("No description")
	}

	line1 := fmt.Sprintf("%s %s  %s", number, name, meta)
	line2 := fmt.Sprintf("   %s", desc)

	content := lipgloss.JoinVertical(lipgloss.Left, line1, line2)
	if selected {
		return selectedItemStyle.Render(content)
	}
	return itemStyle.Render(content)
}

// renderDetailView renders swatches and values for the selected palette
func (m Model) renderDetailView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	p, ok := m.Selected()
	if !ok {
		return "Palette not found"
	}

	hints := []string{
		"↑/↓: scroll",
		"tab: next palette",
		"esc: back",
		"q: quit",
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(strings.TrimRight(tui.Summary(p), "\n")),
		m.detail.View(),
		footerStyle.Render(strings.Join(hints, "  •  ")),
	)
}
