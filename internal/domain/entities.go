package domain

// Todo is a single task owned by a user
type Todo struct {
	ID        string // Backend identifier (_id)
	Title     string // Task text
	Completed bool   // Whether the task is done
	UserID    string // Owning user's ID
}

// GetID returns the backend identifier
func (t *Todo) GetID() string { return t.ID }

// Field returns the named field value for sorting and rendering
func (t *Todo) Field(name string) (any, bool) {
	switch name {
	case "id", "_id":
		return t.ID, true
	case "title":
		return t.Title, true
	case "completed":
		return t.Completed, true
	case "userId":
		return t.UserID, true
	default:
		return nil, false
	}
}

// FilterText returns the text matched by the list filter
func (t *Todo) FilterText() string { return t.Title }

// Status returns a short completion label
func (t *Todo) Status() string {
	if t.Completed {
		return "done"
	}
	return "open"
}

// User is an account registered with the backend
type User struct {
	ID      string
	Name    string
	Email   string
	IsAdmin bool
}

// GetID returns the backend identifier
func (u *User) GetID() string { return u.ID }

// Field returns the named field value for sorting and rendering
func (u *User) Field(name string) (any, bool) {
	switch name {
	case "id", "_id":
		return u.ID, true
	case "name":
		return u.Name, true
	case "email":
		return u.Email, true
	case "isAdmin":
		return u.IsAdmin, true
	default:
		return nil, false
	}
}

// FilterText returns the text matched by the list filter
func (u *User) FilterText() string { return u.Name + " " + u.Email }
