// Package preview is the interactive palette browser. It lists the
// configured palettes and renders swatches and derived values for the
// selected one.
package preview

import (
	tea "github.com/charmbracelet/bubbletea"

	"hadalized/internal/config"
	"hadalized/internal/palette"

	"github.com/charmbracelet/bubbles/viewport"
)

// ViewMode represents the current view state
type ViewMode int

const (
	// ViewList shows the palette list
	ViewList ViewMode = iota
	// ViewDetail shows swatches and values for one palette
	ViewDetail
)

// Model is the state of the preview application
type Model struct {
	keys  []string
	items map[string]*palette.Palette

	viewMode ViewMode
	cursor   int
	detail   viewport.Model
	ready    bool
	width    int
	height   int
}

// NewModel parses every configured palette and builds the initial
// list state.
func NewModel(cfg *config.Config) (Model, error) {
	parsed, err := cfg.ParsePalettes()
	if err != nil {
		return Model{}, err
	}

	return Model{
		keys:     parsed.PaletteNames(),
		items:    parsed.Palettes,
		viewMode: ViewList,
	}, nil
}

// Init returns no initial command; parsing happens in NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the palette under the cursor.
func (m *Model) Selected() (*palette.Palette, bool) {
	if m.cursor < 0 || m.cursor >= len(m.keys) {
		return nil, false
	}
	return m.items[m.keys[m.cursor]], true
}

// GetViewMode returns the current view mode (for testing)
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// MoveCursorUp moves the cursor up in the list
func (m *Model) MoveCursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveCursorDown moves the cursor down in the list
func (m *Model) MoveCursorDown() {
	if m.cursor < len(m.keys)-1 {
		m.cursor++
	}
}

// SetCursor moves the cursor to a specific index
func (m *Model) SetCursor(index int) {
	if index >= 0 && index < len(m.keys) {
		m.cursor = index
	}
}
