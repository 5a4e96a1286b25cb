package domain

import (
	"context"
)

// TodoRepository provides access to todos on the backend
type TodoRepository interface {
	// GetAllTodos returns every todo (admin view)
	GetAllTodos(ctx context.Context) ([]*Todo, error)

	// GetTodosByOwner returns the todos owned by a user.
	// Fails with ErrNotFound when the owner is unknown.
	GetTodosByOwner(ctx context.Context, ownerID string) ([]*Todo, error)

	// DeleteTodo deletes a todo. Fails with ErrNotFound when it is already gone.
	DeleteTodo(ctx context.Context, id string) error
}

// UserRepository provides access to users on the backend
type UserRepository interface {
	// GetAllUsers returns every registered user
	GetAllUsers(ctx context.Context) ([]*User, error)

	// DeleteUser deletes a user. Fails with ErrNotFound when it is already gone.
	DeleteUser(ctx context.Context, id string) error
}

// DataSource combines everything the admin console reads from and writes to the backend
type DataSource interface {
	TodoRepository
	UserRepository
}
