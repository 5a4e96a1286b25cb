package admin

import "github.com/mmcdole/todoadmin/internal/domain"

// Queries provides synchronous, cache-only reads.
type Queries struct {
	store domain.Store
}

// NewQueries creates a new Queries instance.
func NewQueries(store domain.Store) *Queries {
	return &Queries{store: store}
}

func (q *Queries) GetCachedTodos() ([]*domain.Todo, bool) {
	return q.store.GetTodos()
}

func (q *Queries) GetCachedOwnerTodos(ownerID string) ([]*domain.Todo, bool) {
	return q.store.GetOwnerTodos(ownerID)
}

func (q *Queries) GetCachedUsers() ([]*domain.User, bool) {
	return q.store.GetUsers()
}

// FindCachedUser looks up a user by ID in the cached user list
func (q *Queries) FindCachedUser(id string) (*domain.User, bool) {
	users, ok := q.store.GetUsers()
	if !ok {
		return nil, false
	}
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// Counts holds cached collection sizes; -1 means not cached
type Counts struct {
	Todos int
	Users int
}

// CachedCounts returns the sizes of the cached todo and user lists
func (q *Queries) CachedCounts() Counts {
	c := Counts{Todos: -1, Users: -1}
	if todos, ok := q.store.GetTodos(); ok {
		c.Todos = len(todos)
	}
	if users, ok := q.store.GetUsers(); ok {
		c.Users = len(users)
	}
	return c
}
