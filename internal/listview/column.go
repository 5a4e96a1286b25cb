package listview

import (
	"fmt"

	"github.com/mmcdole/todoadmin/internal/domain"
)

// Column describes one table column independently of how it is drawn.
// A data column reads Field from the item; a computed column uses Render.
type Column[T domain.ListItem] struct {
	Key      string              // Stable identifier (equals Field for data columns)
	Field    string              // Data path; empty for computed columns
	Label    string              // Header text
	Sortable bool                // Whether selecting the header sorts by Field
	Width    int                 // Preferred width in cells (0 = share remaining space)
	Render   func(item T) string // Optional cell renderer
}

// DataColumn creates a sortable column bound to a field
func DataColumn[T domain.ListItem](field, label string) Column[T] {
	return Column[T]{Key: field, Field: field, Label: label, Sortable: true}
}

// ComputedColumn creates a non-sortable column rendered by fn
func ComputedColumn[T domain.ListItem](key, label string, fn func(item T) string) Column[T] {
	return Column[T]{Key: key, Label: label, Render: fn}
}

// WithWidth returns a copy of the column with a preferred width
func (c Column[T]) WithWidth(width int) Column[T] {
	c.Width = width
	return c
}

// WithRender returns a copy of the column drawn by fn; a data column stays sortable by Field
func (c Column[T]) WithRender(fn func(item T) string) Column[T] {
	c.Render = fn
	return c
}

// Cell returns the display text for item in this column
func (c Column[T]) Cell(item T) string {
	if c.Render != nil {
		return c.Render(item)
	}
	if c.Field == "" {
		return ""
	}
	v, ok := item.Field(c.Field)
	if !ok || v == nil {
		return ""
	}
	return formatValue(v)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(val)
	}
}

// SortableColumns returns the columns that can drive a SortSpec
func SortableColumns[T domain.ListItem](columns []Column[T]) []Column[T] {
	var out []Column[T]
	for _, c := range columns {
		if c.Sortable && c.Field != "" {
			out = append(out, c)
		}
	}
	return out
}
