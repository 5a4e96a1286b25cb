package rest

import "github.com/mmcdole/todoadmin/internal/domain"

// MapTodos converts backend todos to domain todos, skipping entries without an ID
func MapTodos(dtos []TodoDTO) []*domain.Todo {
	todos := make([]*domain.Todo, 0, len(dtos))
	for _, d := range dtos {
		if d.ID == "" {
			continue
		}
		todos = append(todos, &domain.Todo{
			ID:        d.ID,
			Title:     d.Title,
			Completed: d.Completed,
			UserID:    d.UserID,
		})
	}
	return todos
}

// MapUsers converts backend users to domain users, skipping entries without an ID
func MapUsers(dtos []UserDTO) []*domain.User {
	users := make([]*domain.User, 0, len(dtos))
	for _, d := range dtos {
		if d.ID == "" {
			continue
		}
		users = append(users, &domain.User{
			ID:      d.ID,
			Name:    d.Name,
			Email:   d.Email,
			IsAdmin: d.IsAdmin,
		})
	}
	return users
}

// TodoToDTO converts a domain todo to its wire form
func TodoToDTO(t *domain.Todo) TodoDTO {
	return TodoDTO{ID: t.ID, Title: t.Title, Completed: t.Completed, UserID: t.UserID}
}

// UserToDTO converts a domain user to its wire form
func UserToDTO(u *domain.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}
