package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/todoadmin/internal/domain"
	"github.com/mmcdole/todoadmin/internal/search"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	s := m.current()

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		// Clear active filter first, then leave the user's todos
		if s.FilterQuery() != "" {
			s.SetFilter("")
			return m, nil
		}
		if m.active == ScreenUserTodos {
			cmd := m.switchTo(ScreenAllUsers)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Back):
		if m.active == ScreenUserTodos {
			cmd := m.switchTo(ScreenAllUsers)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.NextScreen):
		if m.active == ScreenAllTodos {
			cmd := m.switchTo(ScreenAllUsers)
			return m, cmd
		}
		cmd := m.switchTo(ScreenAllTodos)
		return m, cmd

	case key.Matches(msg, Keys.TodosScreen):
		cmd := m.switchTo(ScreenAllTodos)
		return m, cmd

	case key.Matches(msg, Keys.UsersScreen):
		cmd := m.switchTo(ScreenAllUsers)
		return m, cmd

	case key.Matches(msg, Keys.Refresh):
		cmd := m.refresh()
		return m, cmd
	}

	// Remaining keys act on loaded rows
	if s.Loading() {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Up):
		s.MoveUp()

	case key.Matches(msg, Keys.Down):
		s.MoveDown()

	case key.Matches(msg, Keys.NextPage):
		s.NextPage()

	case key.Matches(msg, Keys.PrevPage):
		s.PreviousPage()

	case key.Matches(msg, Keys.Delete):
		return m, s.DeleteSelected()

	case key.Matches(msg, Keys.Enter):
		if m.active != ScreenAllUsers {
			return m, nil
		}
		if item, ok := s.SelectedItem(); ok {
			if user, ok := item.(*domain.User); ok {
				cmd := m.openUserTodos(user)
				return m, cmd
			}
		}

	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(s.SortOptions(), s.CurrentSort())

	case key.Matches(msg, Keys.Filter):
		m.purpose = inputFilter
		m.InputModal.Show("Filter "+s.Title(), "type to narrow rows")
		return m, textinput.Blink

	case key.Matches(msg, Keys.JumpToUser):
		m.purpose = inputJump
		m.InputModal.Show("Jump to user", "name or email")
		return m, textinput.Blink
	}

	return m, nil
}

// routeToModal sends keys to the visible modal, if any
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.SortModal.IsVisible() {
		_, selection := m.SortModal.HandleKey(msg.String())
		if selection != nil {
			m.current().ChangeSort(*selection)
		}
		return true, m, nil
	}

	if m.InputModal.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.InputModal, cmd, submitted = m.InputModal.Update(msg)

		switch m.purpose {
		case inputFilter:
			// Filter live while typing; esc clears
			if !m.InputModal.IsVisible() {
				m.current().SetFilter("")
			} else {
				m.current().SetFilter(m.InputModal.Value())
			}
			if submitted {
				m.InputModal.Hide()
			}
		case inputJump:
			if submitted {
				query := m.InputModal.Value()
				m.InputModal.Hide()
				newModel, jumpCmd := m.jumpToUser(query)
				return true, newModel, jumpCmd
			}
		}

		if !m.InputModal.IsVisible() {
			m.purpose = inputNone
		}
		return true, m, cmd
	}

	return false, m, nil
}

// jumpToUser opens the todos of the best fuzzy match for query
func (m Model) jumpToUser(query string) (tea.Model, tea.Cmd) {
	m.purpose = inputNone

	users, ok := m.loadedUsers()
	if !ok {
		// Load users so the next jump has something to match
		cmd := m.users.Reload(m.seq.next())
		newModel, statusCmd := m.setStatus("Users not loaded yet, loading...", false, true, statusTimeout)
		return newModel, tea.Batch(cmd, statusCmd)
	}

	user, found := search.BestUser(query, users)
	if !found {
		return m.setStatus("no matching user", false, true, statusTimeout)
	}

	m.logger.Debug("jump to user", "query", query, "userID", user.ID)
	cmd := m.openUserTodos(user)
	return m, cmd
}
