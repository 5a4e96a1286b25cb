package domain

// ListItem is the polymorphic interface for entities shown in admin tables.
// It provides a common API for sorting, filtering and rendering across entity types.
// Todo and User implement it directly.
type ListItem interface {
	// GetID returns the unique identifier for this item
	GetID() string

	// Field returns the value stored under a named field ("title", "email", ...).
	// The second result is false when the entity has no such field.
	Field(name string) (any, bool)

	// FilterText returns the text the list filter matches against
	FilterText() string
}
