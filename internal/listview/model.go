package listview

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmcdole/todoadmin/internal/domain"
)

// Config parameterizes a Model for one screen
type Config[T domain.ListItem] struct {
	Name            string      // Screen name used in logs
	Columns         []Column[T] // Table columns, in display order
	DefaultSort     SortSpec    // Sort applied before any user choice
	PageSize        int         // Rows per page (DefaultPageSize when <= 0)
	EmptyMessage    string      // Shown instead of the table when the collection is empty
	NotFoundWarning string      // Shown when a delete finds the item already gone

	Fetch  func(ctx context.Context) ([]T, error)
	Delete func(ctx context.Context, item T) error

	Logger *slog.Logger
}

// State is an immutable snapshot of a Model
type State[T domain.ListItem] struct {
	Loading    bool
	Collection []T
	Sort       SortSpec
	Cursor     PageCursor
	Filter     string
	LoadErr    error
}

// DeleteTicket records an optimistic removal so it can be resolved later
type DeleteTicket[T domain.ListItem] struct {
	Item     T
	snapshot []T
}

// DeleteOutcome describes how a resolved delete affected the collection
type DeleteOutcome struct {
	ItemID     string
	Warning    string // Non-blocking warning for the user (already deleted)
	RolledBack bool   // The snapshot was restored
	Err        error  // The delete error, if any
}

// Model is the per-screen list state machine: load, sort, paginate, filter
// and optimistic delete over a single owned collection.
type Model[T domain.ListItem] struct {
	cfg    Config[T]
	logger *slog.Logger

	loading    bool
	loadErr    error
	collection []T
	sort       SortSpec
	cursor     PageCursor
	filter     string
}

// New creates a model with an empty collection on page 1
func New[T domain.ListItem](cfg Config[T]) *Model[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Model[T]{
		cfg:        cfg,
		logger:     logger.With("screen", cfg.Name),
		collection: []T{},
		sort:       cfg.DefaultSort,
		cursor:     FirstPage(),
	}
}

// === Load ===

// BeginLoad marks the model as loading
func (m *Model[T]) BeginLoad() {
	m.loading = true
	m.loadErr = nil
}

// FinishLoad applies a fetch result. On success the collection is replaced;
// on failure it is left empty and the error is kept for display.
func (m *Model[T]) FinishLoad(items []T, err error) {
	m.loading = false
	if err != nil {
		m.logger.Error("failed to load collection", "error", err)
		m.loadErr = err
		m.collection = []T{}
		return
	}
	m.loadErr = nil
	m.collection = clone(items)
	m.logger.Debug("loaded collection", "count", len(items))
}

// Load fetches synchronously through the configured Fetch
func (m *Model[T]) Load(ctx context.Context) error {
	m.BeginLoad()
	if m.cfg.Fetch == nil {
		m.FinishLoad(nil, nil)
		return nil
	}
	items, err := m.cfg.Fetch(ctx)
	m.FinishLoad(items, err)
	return err
}

// === Sort ===

// ChangeSort replaces the sort; the loaded collection is re-sorted on render
func (m *Model[T]) ChangeSort(spec SortSpec) {
	m.sort = spec
}

// ToggleSort applies header-click semantics: same field flips direction,
// a new field starts ascending.
func (m *Model[T]) ToggleSort(field string) {
	if m.sort.Field == field {
		m.sort.Direction = m.sort.Direction.Toggle()
		return
	}
	m.sort = SortSpec{Field: field, Direction: Ascending}
}

// === Pages ===

// NextPage advances one page. There is no upper bound; Paginate returns an
// empty page past the end.
func (m *Model[T]) NextPage() {
	m.cursor = m.cursor.Forward()
}

// PreviousPage retreats one page, never below page 1
func (m *Model[T]) PreviousPage() {
	m.cursor = m.cursor.Back()
}

// === Filter ===

// SetFilter narrows the rendered rows and returns to page 1
func (m *Model[T]) SetFilter(query string) {
	if query == m.filter {
		return
	}
	m.filter = query
	m.cursor = FirstPage()
}

// === Delete ===

// BeginDelete removes item from the collection immediately and returns a ticket
// holding the pre-removal snapshot.
func (m *Model[T]) BeginDelete(item T) DeleteTicket[T] {
	snapshot := m.collection
	id := item.GetID()

	remaining := make([]T, 0, len(snapshot))
	for _, it := range snapshot {
		if it.GetID() != id {
			remaining = append(remaining, it)
		}
	}
	m.collection = remaining

	m.logger.Debug("optimistic delete", "id", id, "remaining", len(remaining))
	return DeleteTicket[T]{Item: item, snapshot: snapshot}
}

// ResolveDelete applies the backend result of a delete.
// Not-found keeps the removal and returns a warning; any other error restores
// the snapshot taken by BeginDelete.
func (m *Model[T]) ResolveDelete(ticket DeleteTicket[T], err error) DeleteOutcome {
	outcome := DeleteOutcome{ItemID: ticket.Item.GetID(), Err: err}

	switch {
	case err == nil:
		m.logger.Info("deleted item", "id", outcome.ItemID)
	case errors.Is(err, domain.ErrNotFound):
		outcome.Warning = m.cfg.NotFoundWarning
		m.logger.Warn("item already deleted", "id", outcome.ItemID)
	default:
		m.collection = ticket.snapshot
		outcome.RolledBack = true
		m.logger.Error("delete failed, rolled back", "id", outcome.ItemID, "error", err)
	}

	return outcome
}

// Delete performs an optimistic delete synchronously through the configured Delete
func (m *Model[T]) Delete(ctx context.Context, item T) DeleteOutcome {
	ticket := m.BeginDelete(item)
	var err error
	if m.cfg.Delete != nil {
		err = m.cfg.Delete(ctx, item)
	}
	return m.ResolveDelete(ticket, err)
}

// === Render pipeline ===

// Visible returns the rows for the current page: filter, then sort, then paginate
func (m *Model[T]) Visible() []T {
	return Paginate(Sort(Filter(m.collection, m.filter), m.sort), m.cursor.Current, m.cfg.PageSize)
}

// Meta returns page metadata for the filtered collection
func (m *Model[T]) Meta() PageMeta {
	total := len(m.collection)
	if m.filter != "" {
		total = len(Filter(m.collection, m.filter))
	}
	return NewPageMeta(total, m.cursor.Current, m.cfg.PageSize)
}

// IsEmpty reports whether the loaded collection has no items. It ignores the
// filter and current page, so a page past the end is not "empty".
func (m *Model[T]) IsEmpty() bool {
	return len(m.collection) == 0
}

// === Accessors ===

func (m *Model[T]) Name() string { return m.cfg.Name }
func (m *Model[T]) Columns() []Column[T] { return m.cfg.Columns }
func (m *Model[T]) EmptyMessage() string { return m.cfg.EmptyMessage }
func (m *Model[T]) PageSize() int { return m.cfg.PageSize }
func (m *Model[T]) Loading() bool { return m.loading }
func (m *Model[T]) LoadErr() error { return m.loadErr }
func (m *Model[T]) CurrentSort() SortSpec { return m.sort }
func (m *Model[T]) Cursor() PageCursor { return m.cursor }
func (m *Model[T]) FilterQuery() string { return m.filter }
func (m *Model[T]) Collection() []T { return clone(m.collection) }
func (m *Model[T]) Fetcher() func(context.Context) ([]T, error) { return m.cfg.Fetch }
func (m *Model[T]) Deleter() func(context.Context, T) error { return m.cfg.Delete }

// State returns a snapshot of the model
func (m *Model[T]) State() State[T] {
	return State[T]{
		Loading:    m.loading,
		Collection: clone(m.collection),
		Sort:       m.sort,
		Cursor:     m.cursor,
		Filter:     m.filter,
		LoadErr:    m.loadErr,
	}
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
