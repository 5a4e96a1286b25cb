package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/todoadmin/internal/tui/components"
	"github.com/mmcdole/todoadmin/internal/tui/styles"
)

const appTitle = "todoadmin"

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderNavbar(),
		m.renderFilterLine(),
		styles.ContentStyle.Render(m.renderContent()),
		m.renderFooter(),
	)

	// Overlay sort modal if visible
	if m.SortModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	// Overlay input modal if visible
	if m.InputModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.InputModal.View())
	}

	return view
}

func (m Model) renderNavbar() string {
	todos, users := m.navCounts()
	tabs := []components.NavTab{
		{Key: "1", Label: "Todos", Count: todos},
		{Key: "2", Label: "Users", Count: users},
	}

	active := 0
	switch m.active {
	case ScreenAllUsers:
		active = 1
	case ScreenUserTodos:
		tabs = append(tabs, components.NavTab{Label: m.userTodos.Title(), Count: m.userTodos.Len()})
		active = 2
	}

	return components.RenderNavbar(appTitle, tabs, active)
}

// renderFilterLine shows the active filter, or a blank line to keep the layout stable
func (m Model) renderFilterLine() string {
	query := m.current().FilterQuery()
	if query == "" {
		return ""
	}
	return styles.FilterPromptStyle.Render("/") + styles.FilterStyle.Render(query) +
		styles.DimStyle.Render("  (esc to clear)")
}

func (m Model) renderContent() string {
	s := m.current()

	switch {
	case s.Loading():
		return m.Spinner.View() + " " + styles.DimStyle.Render("Loading "+s.Title()+"...")
	case s.LoadErr() != nil:
		return styles.ErrorStyle.Render(fmt.Sprintf("Error loading %s: %v", s.Title(), s.LoadErr()))
	case s.IsEmpty():
		return styles.EmptyStateStyle.Render(s.EmptyMessage())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.SubtitleStyle.Render(s.Title()),
		s.View(),
		components.RenderPager(s.Meta()),
	)
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		switch {
		case m.StatusIsErr:
			left = styles.ErrorStyle.Render(m.StatusMsg)
		case m.StatusIsWarn:
			left = styles.WarnStyle.Render(m.StatusMsg)
		default:
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	hints := []string{
		styles.KeyHint("x", "delete"),
		styles.KeyHint("s", "sort"),
		styles.KeyHint("/", "filter"),
	}
	if m.active == ScreenAllUsers {
		hints = append(hints, styles.KeyHint("enter", "todos"))
	}
	hints = append(hints, styles.KeyHint("?", "help"))
	right := strings.Join(hints, "  ")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      ACTIONS
  j/k        Up/down               x      Delete row
  h/l        Previous/next page    s      Sort
  Enter      Open user's todos     /      Filter
  Backspace  Back to users         o      Jump to user
  Tab        Switch screen         r      Refresh
  1/2        Todos/Users           q      Quit
                                   ?      This help
                                   Esc    Clear filter / Back

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
