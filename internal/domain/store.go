package domain

// Store handles the local collection cache (BoltDB + memory).
// The TUI reads cached collections through admin.Queries; admin.Service writes them.
type Store interface {
	// === Todos ===
	GetTodos() ([]*Todo, bool)
	SaveTodos(todos []*Todo) error

	GetOwnerTodos(ownerID string) ([]*Todo, bool)
	SaveOwnerTodos(ownerID string, todos []*Todo) error

	// === Users ===
	GetUsers() ([]*User, bool)
	SaveUsers(users []*User) error

	// === Invalidation ===
	InvalidateTodos()
	InvalidateOwnerTodos(ownerID string)
	InvalidateUsers()
	InvalidateAll()

	Close() error
}
