package rest

// TodoDTO is a todo as encoded by the backend
type TodoDTO struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed,omitempty"`
	UserID    string `json:"userId,omitempty"`
}

// UserDTO is a user as encoded by the backend
type UserDTO struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

// ErrorResponse is the body some backend errors carry
type ErrorResponse struct {
	Message string `json:"message"`
}
