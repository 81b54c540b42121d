package preview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"hadalized/internal/tui"
)

// detailChrome is the vertical space the detail header and footer take
// away from the viewport.
const detailChrome = 8

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		h := m.height - detailChrome
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.detail = viewport.New(m.width, h)
			m.ready = true
		} else {
			m.detail.Width = m.width
			m.detail.Height = h
		}
		if m.viewMode == ViewDetail {
			m.setDetailContent()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	default:
		return m, nil
	}
}

// handleListKeys handles keys in list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Quit
	case "q", "ctrl+c":
		return m, tea.Quit

	// Navigation
	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	// Direct selection with number keys
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(msg.String()[0] - '1')
		m.SetCursor(index)
		return m, nil

	// Open palette detail
	case "enter", " ":
		if _, ok := m.Selected(); ok {
			m.viewMode = ViewDetail
			m.setDetailContent()
		}
		return m, nil
	}

	return m, nil
}

// handleDetailKeys handles keys in detail view
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Quit
	case "q", "ctrl+c":
		return m, tea.Quit

	// Back to list
	case "esc", "backspace":
		m.viewMode = ViewList
		return m, nil

	// Cycle palettes without leaving the detail view
	case "tab", "right", "l":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
		m.setDetailContent()
		return m, nil

	case "shift+tab", "left", "h":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.keys) - 1
		}
		m.setDetailContent()
		return m, nil
	}

	// Everything else scrolls the viewport.
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// setDetailContent fills the viewport with the selected palette's
// swatches and value table and rewinds the scroll position.
func (m *Model) setDetailContent() {
	if !m.ready {
		return
	}
	p, ok := m.Selected()
	if !ok {
		return
	}
	m.detail.SetContent(tui.SwatchRows(p) + "\n" + tui.PaletteTable(p))
	m.detail.GotoTop()
}
