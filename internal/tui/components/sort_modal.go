package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/todoadmin/internal/listview"
	"github.com/mmcdole/todoadmin/internal/tui/styles"
)

// SortOption is a sortable column offered by the modal
type SortOption struct {
	Field string
	Label string
}

// SortModal is a small popup for choosing sort order
type SortModal struct {
	visible bool
	options []SortOption
	cursor  int
	active  listview.SortSpec
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{}
}

// Show displays the modal with the given options and current sort state
func (m *SortModal) Show(options []SortOption, active listview.SortSpec) {
	m.visible = true
	m.options = options
	m.active = active
	// Position cursor on the active field
	m.cursor = 0
	for i, opt := range options {
		if opt.Field == active.Field {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice. Choosing the active
// field flips its direction; any other field starts ascending.
func (m *SortModal) HandleKey(key string) (handled bool, selection *listview.SortSpec) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return true, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		if len(m.options) == 0 {
			m.visible = false
			return true, nil
		}
		chosen := m.options[m.cursor]
		spec := listview.SortSpec{Field: chosen.Field, Direction: listview.Ascending}
		if chosen.Field == m.active.Field {
			spec.Direction = m.active.Direction.Toggle()
		}
		m.visible = false
		return true, &spec
	case "esc", "s":
		m.visible = false
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		selected := i == m.cursor
		isActive := opt.Field == m.active.Field

		prefix := "  "
		suffix := ""
		if isActive {
			prefix = "✓ "
			suffix = " " + m.active.Direction.Arrow()
		}

		text := styles.Pad(prefix+opt.Label+suffix, 20)

		var line string
		switch {
		case selected:
			line = lipgloss.NewStyle().
				Foreground(styles.White).
				Background(styles.SlateLight).
				Render(text)
		case isActive:
			line = lipgloss.NewStyle().
				Foreground(styles.Accent).
				Render(text)
		default:
			line = lipgloss.NewStyle().
				Foreground(styles.LightGray).
				Render(text)
		}
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + content)
}
