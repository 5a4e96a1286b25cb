package listview

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/todoadmin/internal/domain"
)

// Direction represents sort direction
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc"
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Arrow returns the header indicator for the direction
func (d Direction) Arrow() string {
	if d == Descending {
		return "↓"
	}
	return "↑"
}

// SortSpec is the field and direction driving Sort
type SortSpec struct {
	Field     string
	Direction Direction
}

// String renders the spec in "field:order" form
func (s SortSpec) String() string {
	return s.Field + ":" + s.Direction.String()
}

// Sort orders items by spec.Field.
// Returns a new slice; does not modify the original.
// Equal keys keep their input order in both directions. Unknown fields compare
// equal, so the input order is preserved.
func Sort[T domain.ListItem](items []T, spec SortSpec) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, _ := sorted[i].Field(spec.Field)
		b, _ := sorted[j].Field(spec.Field)
		c := compareValues(a, b)
		// Descending flips the comparison, not the result, to keep ties stable
		if spec.Direction == Descending {
			return c > 0
		}
		return c < 0
	})

	return sorted
}

// compareValues orders two field values of the same kind.
// Mixed or unsupported kinds compare equal.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	default:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if aok && bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
		}
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// sortPartsMax is the maximum number of parts in a sort expression (field:order).
const sortPartsMax = 2

// ErrEmptySortField is returned for a blank sort expression
var ErrEmptySortField = errors.New("sort field cannot be empty")

// ParseSortExpression parses a sort expression in "field:order" format.
// Supports:
//   - "field" - defaults to asc order
//   - "field:asc" - explicit ascending order
//   - "field:desc" - explicit descending order
func ParseSortExpression(expr string) (SortSpec, error) {
	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return SortSpec{}, fmt.Errorf("invalid format: too many colons in %q", expr)
	}

	field := strings.TrimSpace(parts[0])
	if field == "" {
		return SortSpec{}, ErrEmptySortField
	}

	spec := SortSpec{Field: field, Direction: Ascending}
	if len(parts) == sortPartsMax {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc":
		case "desc":
			spec.Direction = Descending
		default:
			return SortSpec{}, fmt.Errorf("invalid sort order: %q (must be asc or desc)", parts[1])
		}
	}

	return spec, nil
}
