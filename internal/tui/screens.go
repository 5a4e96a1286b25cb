package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/todoadmin/internal/admin"
	"github.com/mmcdole/todoadmin/internal/domain"
	"github.com/mmcdole/todoadmin/internal/listview"
	"github.com/mmcdole/todoadmin/internal/tui/components"
	"github.com/mmcdole/todoadmin/internal/tui/styles"
)

// ScreenID identifies one of the list screens
type ScreenID int

const (
	ScreenAllTodos ScreenID = iota
	ScreenAllUsers
	ScreenUserTodos
)

// String returns the screen name used in logs
func (s ScreenID) String() string {
	switch s {
	case ScreenAllTodos:
		return "all-todos"
	case ScreenAllUsers:
		return "all-users"
	case ScreenUserTodos:
		return "user-todos"
	default:
		return "unknown"
	}
}

// Empty-state and already-deleted texts shown to the user
const (
	noTodosMessage     = "There are no todos in the database"
	noUserTodosMessage = "User doesn't have todos"
	noUsersMessage     = "There are no users in the database"

	todoGoneWarning = "This todo has already been deleted."
	userGoneWarning = "This user has already been deleted."
)

const (
	minFlexWidth   = 10
	cellPadding    = 2 // table cells pad one space each side
	defaultWidth   = 80
	deleteGlyph    = "✕"
	deleteColWidth = 3
)

// ScreenOptions carries the per-screen settings taken from config
type ScreenOptions struct {
	PageSize int
	TodoSort listview.SortSpec
	UserSort listview.SortSpec
	Logger   *slog.Logger
}

// screen is the type-erased view of a listScreen used by the app model
type screen interface {
	ID() ScreenID
	Title() string

	Reload(gen int) tea.Cmd
	ApplyLoaded(msg ScreenLoadedMsg) bool
	Loaded() bool
	Stale() bool
	MarkStale()

	DeleteSelected() tea.Cmd
	ApplyDelete(msg DeleteResolvedMsg) (listview.DeleteOutcome, bool)

	NextPage()
	PreviousPage()
	MoveUp()
	MoveDown()
	SelectedItem() (domain.ListItem, bool)

	SetFilter(query string)
	FilterQuery() string

	SortOptions() []components.SortOption
	CurrentSort() listview.SortSpec
	ChangeSort(spec listview.SortSpec)

	Loading() bool
	LoadErr() error
	IsEmpty() bool
	EmptyMessage() string
	Len() int
	Meta() listview.PageMeta

	SetSize(width, height int)
	View() string
}

// listScreen binds a listview.Model to a bubbles table
type listScreen[T domain.ListItem] struct {
	id    ScreenID
	title string
	model *listview.Model[T]
	table table.Model

	gen    int  // generation of the latest load
	loaded bool // a load has completed at least once
	stale  bool // another screen changed data this one shows

	width  int
	logger *slog.Logger
}

func newListScreen[T domain.ListItem](id ScreenID, title string, cfg listview.Config[T]) *listScreen[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &listScreen[T]{
		id:     id,
		title:  title,
		model:  listview.New(cfg),
		width:  defaultWidth,
		logger: logger,
	}

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(s.model.PageSize()+2),
	)
	st := table.DefaultStyles()
	st.Header = styles.TableHeaderStyle
	st.Selected = styles.TableSelectedStyle
	st.Cell = styles.TableCellStyle
	t.SetStyles(st)
	s.table = t

	s.refresh()
	return s
}

func (s *listScreen[T]) ID() ScreenID { return s.id }
func (s *listScreen[T]) Title() string { return s.title }
func (s *listScreen[T]) Loaded() bool { return s.loaded }
func (s *listScreen[T]) Stale() bool { return s.stale }
func (s *listScreen[T]) MarkStale() { s.stale = true }
func (s *listScreen[T]) Loading() bool { return s.model.Loading() }
func (s *listScreen[T]) LoadErr() error { return s.model.LoadErr() }
func (s *listScreen[T]) IsEmpty() bool { return s.model.IsEmpty() }
func (s *listScreen[T]) Len() int { return len(s.model.Collection()) }

func (s *listScreen[T]) EmptyMessage() string { return s.model.EmptyMessage() }
func (s *listScreen[T]) Meta() listview.PageMeta { return s.model.Meta() }
func (s *listScreen[T]) FilterQuery() string { return s.model.FilterQuery() }
func (s *listScreen[T]) CurrentSort() listview.SortSpec { return s.model.CurrentSort() }

// === Load ===

// Reload marks the screen loading and returns the fetch command
func (s *listScreen[T]) Reload(gen int) tea.Cmd {
	s.gen = gen
	s.stale = false
	s.model.BeginLoad()
	return LoadScreenCmd(s.id, gen, s.model.Fetcher())
}

// ApplyLoaded applies a fetch result; results from superseded loads are dropped
func (s *listScreen[T]) ApplyLoaded(msg ScreenLoadedMsg) bool {
	if msg.Gen != s.gen {
		s.logger.Debug("dropping stale load", "screen", s.id, "gen", msg.Gen, "current", s.gen)
		return false
	}

	items, _ := msg.Items.([]T)
	s.model.FinishLoad(items, msg.Err)
	s.loaded = true
	s.refresh()
	s.table.SetCursor(0)
	return true
}

// === Delete ===

// DeleteSelected removes the selected row optimistically and returns the
// command that performs the backend delete
func (s *listScreen[T]) DeleteSelected() tea.Cmd {
	item, ok := s.selected()
	if !ok {
		return nil
	}

	ticket := s.model.BeginDelete(item)
	s.refresh()
	return DeleteItemCmd(s.id, s.gen, ticket, s.model.Deleter())
}

// ApplyDelete resolves a delete. A delete issued before the latest reload
// is not applied, since its snapshot predates the fresh collection.
func (s *listScreen[T]) ApplyDelete(msg DeleteResolvedMsg) (listview.DeleteOutcome, bool) {
	ticket, ok := msg.Ticket.(listview.DeleteTicket[T])
	if !ok {
		return listview.DeleteOutcome{}, false
	}
	if msg.Gen != s.gen {
		s.logger.Debug("delete resolved after reload", "screen", s.id, "id", ticket.Item.GetID())
		return listview.DeleteOutcome{ItemID: ticket.Item.GetID(), Err: msg.Err}, false
	}

	outcome := s.model.ResolveDelete(ticket, msg.Err)
	s.refresh()
	return outcome, true
}

// === Navigation ===

func (s *listScreen[T]) NextPage() {
	s.model.NextPage()
	s.refresh()
	s.table.SetCursor(0)
}

func (s *listScreen[T]) PreviousPage() {
	s.model.PreviousPage()
	s.refresh()
	s.table.SetCursor(0)
}

func (s *listScreen[T]) MoveUp() { s.table.MoveUp(1) }
func (s *listScreen[T]) MoveDown() { s.table.MoveDown(1) }

func (s *listScreen[T]) SelectedItem() (domain.ListItem, bool) {
	item, ok := s.selected()
	if !ok {
		return nil, false
	}
	return item, true
}

func (s *listScreen[T]) selected() (T, bool) {
	var zero T
	rows := s.model.Visible()
	c := s.table.Cursor()
	if c < 0 || c >= len(rows) {
		return zero, false
	}
	return rows[c], true
}

// === Filter and sort ===

func (s *listScreen[T]) SetFilter(query string) {
	s.model.SetFilter(query)
	s.refresh()
	s.table.SetCursor(0)
}

func (s *listScreen[T]) SortOptions() []components.SortOption {
	var opts []components.SortOption
	for _, c := range listview.SortableColumns(s.model.Columns()) {
		opts = append(opts, components.SortOption{Field: c.Field, Label: c.Label})
	}
	return opts
}

func (s *listScreen[T]) ChangeSort(spec listview.SortSpec) {
	s.model.ChangeSort(spec)
	s.refresh()
}

// === Rendering ===

func (s *listScreen[T]) SetSize(width, height int) {
	s.width = width
	s.refresh()
}

func (s *listScreen[T]) View() string {
	return s.table.View()
}

// refresh rebuilds table columns and rows from the model
func (s *listScreen[T]) refresh() {
	cols := s.model.Columns()
	sortSpec := s.model.CurrentSort()
	widths := columnWidths(cols, s.width)

	tcols := make([]table.Column, len(cols))
	for i, c := range cols {
		title := c.Label
		if c.Sortable && c.Field == sortSpec.Field {
			title += " " + sortSpec.Direction.Arrow()
		}
		tcols[i] = table.Column{Title: title, Width: widths[i]}
	}

	visible := s.model.Visible()
	rows := make([]table.Row, len(visible))
	for i, item := range visible {
		row := make(table.Row, len(cols))
		for j, c := range cols {
			row[j] = styles.Truncate(c.Cell(item), widths[j])
		}
		rows[i] = row
	}

	// Rows must be cleared before columns change shape
	s.table.SetRows(nil)
	s.table.SetColumns(tcols)
	s.table.SetRows(rows)

	switch c := s.table.Cursor(); {
	case c < 0 && len(rows) > 0:
		s.table.SetCursor(0)
	case c >= len(rows):
		s.table.SetCursor(len(rows) - 1)
	}
}

// columnWidths gives fixed-width columns their width and splits the rest
func columnWidths[T domain.ListItem](cols []listview.Column[T], total int) []int {
	widths := make([]int, len(cols))
	fixed, flex := 0, 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else {
			flex++
		}
		fixed += cellPadding
	}
	if flex == 0 {
		return widths
	}

	share := (total - fixed) / flex
	if share < minFlexWidth {
		share = minFlexWidth
	}
	for i, c := range cols {
		if c.Width <= 0 {
			widths[i] = share
		}
	}
	return widths
}

// === Screen constructors ===

func deleteColumn[T domain.ListItem]() listview.Column[T] {
	return listview.ComputedColumn("delete", "", func(T) string { return deleteGlyph }).WithWidth(deleteColWidth)
}

func todoStatusColumn() listview.Column[*domain.Todo] {
	return listview.DataColumn[*domain.Todo]("completed", "Status").
		WithRender(func(td *domain.Todo) string { return td.Status() }).
		WithWidth(8)
}

func newAllTodosScreen(svc *admin.Service, opts ScreenOptions) *listScreen[*domain.Todo] {
	return newListScreen(ScreenAllTodos, "All Todos", listview.Config[*domain.Todo]{
		Name: ScreenAllTodos.String(),
		Columns: []listview.Column[*domain.Todo]{
			listview.DataColumn[*domain.Todo]("title", "User Task"),
			todoStatusColumn(),
			deleteColumn[*domain.Todo](),
		},
		DefaultSort:     opts.TodoSort,
		PageSize:        opts.PageSize,
		EmptyMessage:    noTodosMessage,
		NotFoundWarning: todoGoneWarning,
		Fetch:           svc.FetchTodos,
		Delete:          svc.DeleteTodo,
		Logger:          opts.Logger,
	})
}

func newUserTodosScreen(svc *admin.Service, opts ScreenOptions, ownerID, ownerName string) *listScreen[*domain.Todo] {
	title := "Todos of " + ownerName
	return newListScreen(ScreenUserTodos, title, listview.Config[*domain.Todo]{
		Name: ScreenUserTodos.String(),
		Columns: []listview.Column[*domain.Todo]{
			listview.DataColumn[*domain.Todo]("title", "User Tasks"),
			todoStatusColumn(),
			deleteColumn[*domain.Todo](),
		},
		DefaultSort:     opts.TodoSort,
		PageSize:        opts.PageSize,
		EmptyMessage:    noUserTodosMessage,
		NotFoundWarning: todoGoneWarning,
		Fetch: func(ctx context.Context) ([]*domain.Todo, error) {
			return svc.FetchOwnerTodos(ctx, ownerID)
		},
		Delete: svc.DeleteTodo,
		Logger: opts.Logger,
	})
}

func newAllUsersScreen(svc *admin.Service, opts ScreenOptions) *listScreen[*domain.User] {
	return newListScreen(ScreenAllUsers, "Users", listview.Config[*domain.User]{
		Name: ScreenAllUsers.String(),
		Columns: []listview.Column[*domain.User]{
			listview.DataColumn[*domain.User]("name", "User Name"),
			listview.DataColumn[*domain.User]("email", "User Email"),
			listview.DataColumn[*domain.User]("isAdmin", "Admin").WithWidth(6),
			deleteColumn[*domain.User](),
		},
		DefaultSort:     opts.UserSort,
		PageSize:        opts.PageSize,
		EmptyMessage:    noUsersMessage,
		NotFoundWarning: userGoneWarning,
		Fetch:           svc.FetchUsers,
		Delete:          svc.DeleteUser,
		Logger:          opts.Logger,
	})
}
