package admin

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmcdole/todoadmin/internal/domain"
)

// Service orchestrates the backend data source and the collection cache.
// Fetches record into the store; deletes invalidate the affected entries.
type Service struct {
	source domain.DataSource
	store  domain.Store
	logger *slog.Logger
}

// NewService creates a new admin service.
func NewService(source domain.DataSource, store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, store: store, logger: logger}
}

func (s *Service) FetchTodos(ctx context.Context) ([]*domain.Todo, error) {
	todos, err := s.source.GetAllTodos(ctx)
	if err != nil {
		s.logger.Error("failed to fetch todos", "error", err)
		return nil, err
	}
	if err := s.store.SaveTodos(todos); err != nil {
		s.logger.Error("failed to save todos", "error", err)
	}
	s.logger.Debug("fetched todos", "count", len(todos))
	return todos, nil
}

func (s *Service) FetchOwnerTodos(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
	todos, err := s.source.GetTodosByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to fetch owner todos", "error", err, "ownerID", ownerID)
		return nil, err
	}
	if err := s.store.SaveOwnerTodos(ownerID, todos); err != nil {
		s.logger.Error("failed to save owner todos", "error", err, "ownerID", ownerID)
	}
	s.logger.Debug("fetched owner todos", "count", len(todos), "ownerID", ownerID)
	return todos, nil
}

func (s *Service) FetchUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.source.GetAllUsers(ctx)
	if err != nil {
		s.logger.Error("failed to fetch users", "error", err)
		return nil, err
	}
	if err := s.store.SaveUsers(users); err != nil {
		s.logger.Error("failed to save users", "error", err)
	}
	s.logger.Debug("fetched users", "count", len(users))
	return users, nil
}

// DeleteTodo deletes a todo on the backend. The cache is invalidated on
// success and on not-found, since in both cases the todo no longer exists.
func (s *Service) DeleteTodo(ctx context.Context, todo *domain.Todo) error {
	err := s.source.DeleteTodo(ctx, todo.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("failed to delete todo", "error", err, "id", todo.ID)
		return err
	}

	if todo.UserID != "" {
		s.store.InvalidateOwnerTodos(todo.UserID)
	} else {
		s.store.InvalidateTodos()
	}

	if err != nil {
		s.logger.Warn("todo already deleted", "id", todo.ID)
		return err
	}
	s.logger.Info("deleted todo", "id", todo.ID)
	return nil
}

// DeleteUser deletes a user on the backend. The backend drops the user's
// todos too, so every todo list is invalidated along with the user list.
func (s *Service) DeleteUser(ctx context.Context, user *domain.User) error {
	err := s.source.DeleteUser(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("failed to delete user", "error", err, "id", user.ID)
		return err
	}

	s.store.InvalidateUsers()
	s.store.InvalidateTodos()

	if err != nil {
		s.logger.Warn("user already deleted", "id", user.ID)
		return err
	}
	s.logger.Info("deleted user", "id", user.ID)
	return nil
}

// InvalidateTodos drops cached todo lists before a refresh
func (s *Service) InvalidateTodos() {
	s.store.InvalidateTodos()
}

// InvalidateOwnerTodos drops one owner's cached list before a refresh
func (s *Service) InvalidateOwnerTodos(ownerID string) {
	s.store.InvalidateOwnerTodos(ownerID)
}

// InvalidateUsers drops the cached user list before a refresh
func (s *Service) InvalidateUsers() {
	s.store.InvalidateUsers()
}
