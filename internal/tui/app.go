package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/todoadmin/internal/admin"
	"github.com/mmcdole/todoadmin/internal/domain"
	"github.com/mmcdole/todoadmin/internal/tui/components"
	"github.com/mmcdole/todoadmin/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// inputPurpose says what the shared input modal is collecting
type inputPurpose int

const (
	inputNone inputPurpose = iota
	inputFilter
	inputJump
)

// ChromeHeight is the navbar, filter and footer lines around the content
const ChromeHeight = 4

// sequence hands out load generations shared by every copy of the model
type sequence struct{ n int }

func (s *sequence) next() int {
	s.n++
	return s.n
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	AdminSvc *admin.Service
	Queries  *admin.Queries

	// Screens
	todos     *listScreen[*domain.Todo]
	users     *listScreen[*domain.User]
	userTodos *listScreen[*domain.Todo] // nil until a user is opened
	active    ScreenID
	ownerID   string
	opts      ScreenOptions
	seq       *sequence

	// UI Components
	SortModal  components.SortModal
	InputModal components.InputModal
	purpose    inputPurpose
	Spinner    spinner.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	StatusIsWarn bool

	logger *slog.Logger
}

// NewModel creates a new application model starting on the given screen
func NewModel(svc *admin.Service, queries *admin.Queries, opts ScreenOptions, start ScreenID) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := Model{
		State:      StateBrowsing,
		AdminSvc:   svc,
		Queries:    queries,
		todos:      newAllTodosScreen(svc, opts),
		users:      newAllUsersScreen(svc, opts),
		active:     start,
		opts:       opts,
		seq:        &sequence{},
		SortModal:  components.NewSortModal(),
		InputModal: components.NewInputModal(),
		Spinner:    sp,
		logger:     opts.Logger,
	}
	if start == ScreenUserTodos {
		m.active = ScreenAllUsers
	}
	return m
}

// WithOwner opens the given user's todos as the starting screen
func (m Model) WithOwner(ownerID string) Model {
	name := ownerID
	if u, ok := m.Queries.FindCachedUser(ownerID); ok {
		name = u.Name
	}
	m.userTodos = newUserTodosScreen(m.AdminSvc, m.opts, ownerID, name)
	m.ownerID = ownerID
	m.active = ScreenUserTodos
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		m.current().Reload(m.seq.next()),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case ScreenLoadedMsg:
		return m.handleScreenLoaded(msg)

	case DeleteResolvedMsg:
		return m.handleDeleteResolved(msg)

	case ErrMsg:
		return m.setStatus(msg.Error(), true, false, errorTimeout)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError, msg.IsWarn, statusTimeout)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		m.StatusIsWarn = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleScreenLoaded(msg ScreenLoadedMsg) (tea.Model, tea.Cmd) {
	s := m.screen(msg.Screen)
	if s == nil || !s.ApplyLoaded(msg) {
		return m, nil
	}
	if msg.Err != nil {
		return m.setStatus(fmt.Sprintf("Error loading %s: %v", s.Title(), msg.Err), true, false, errorTimeout)
	}
	return m, nil
}

// handleDeleteResolved applies the delete policy and reports the outcome:
// not-found warns and keeps the removal, other errors restore the snapshot.
func (m Model) handleDeleteResolved(msg DeleteResolvedMsg) (tea.Model, tea.Cmd) {
	s := m.screen(msg.Screen)
	if s == nil {
		return m, nil
	}

	outcome, applied := s.ApplyDelete(msg)

	if msg.Err == nil || errors.Is(msg.Err, domain.ErrNotFound) {
		m.markOthersStale(msg.Screen)
	}

	switch {
	case outcome.Warning != "":
		return m.setStatus(outcome.Warning, false, true, statusTimeout)
	case outcome.RolledBack:
		return m.setStatus(fmt.Sprintf("Delete failed, restored: %v", outcome.Err), true, false, errorTimeout)
	case !applied && msg.Err != nil:
		return m.setStatus(fmt.Sprintf("Delete failed: %v", msg.Err), true, false, errorTimeout)
	case msg.Err == nil:
		return m.setStatus("Deleted", false, false, statusTimeout)
	}
	return m, nil
}

func (m Model) setStatus(text string, isErr, isWarn bool, clearAfter time.Duration) (tea.Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	m.StatusIsWarn = isWarn
	return m, ClearStatusCmd(clearAfter)
}

// === Screens ===

// screen returns the screen for id, or nil when it does not exist
func (m Model) screen(id ScreenID) screen {
	switch id {
	case ScreenAllTodos:
		return m.todos
	case ScreenAllUsers:
		return m.users
	case ScreenUserTodos:
		if m.userTodos != nil {
			return m.userTodos
		}
	}
	return nil
}

func (m Model) current() screen {
	if s := m.screen(m.active); s != nil {
		return s
	}
	return m.todos
}

// switchTo activates a screen, loading it when it has never loaded or is stale
func (m *Model) switchTo(id ScreenID) tea.Cmd {
	s := m.screen(id)
	if s == nil {
		return nil
	}
	m.active = id
	m.SortModal.Hide()
	if !s.Loaded() || s.Stale() {
		return s.Reload(m.seq.next())
	}
	return nil
}

// openUserTodos replaces the user todos screen with the given owner's list
func (m *Model) openUserTodos(user *domain.User) tea.Cmd {
	m.userTodos = newUserTodosScreen(m.AdminSvc, m.opts, user.ID, user.Name)
	m.ownerID = user.ID
	m.updateLayout()
	return m.switchTo(ScreenUserTodos)
}

// refresh drops the cached copy and reloads the active screen
func (m *Model) refresh() tea.Cmd {
	switch m.active {
	case ScreenAllTodos:
		m.AdminSvc.InvalidateTodos()
	case ScreenAllUsers:
		m.AdminSvc.InvalidateUsers()
	case ScreenUserTodos:
		m.AdminSvc.InvalidateOwnerTodos(m.ownerID)
	}
	return m.current().Reload(m.seq.next())
}

// markOthersStale flags screens whose data a delete on id may have changed
func (m *Model) markOthersStale(id ScreenID) {
	for _, other := range []ScreenID{ScreenAllTodos, ScreenAllUsers, ScreenUserTodos} {
		if other == id {
			continue
		}
		// Deleting a todo never changes the user list
		if other == ScreenAllUsers && id != ScreenAllUsers {
			continue
		}
		if s := m.screen(other); s != nil && s.Loaded() {
			s.MarkStale()
		}
	}
}

// loadedUsers returns the users for jump-to-user: the users screen when
// loaded, otherwise the cached list
func (m Model) loadedUsers() ([]*domain.User, bool) {
	if m.users.Loaded() && m.users.LoadErr() == nil {
		return m.users.model.Collection(), true
	}
	return m.Queries.GetCachedUsers()
}

// navCounts returns the todo and user counts shown in the navbar
func (m Model) navCounts() (todos, users int) {
	cached := m.Queries.CachedCounts()
	todos, users = cached.Todos, cached.Users
	if m.todos.Loaded() && m.todos.LoadErr() == nil {
		todos = m.todos.Len()
	}
	if m.users.Loaded() && m.users.LoadErr() == nil {
		users = m.users.Len()
	}
	return todos, users
}

func (m *Model) updateLayout() {
	width := m.Width - 4 // content padding
	if width <= 0 {
		width = defaultWidth
	}
	height := m.Height - ChromeHeight
	for _, s := range []screen{m.todos, m.users} {
		s.SetSize(width, height)
	}
	if m.userTodos != nil {
		m.userTodos.SetSize(width, height)
	}
}
