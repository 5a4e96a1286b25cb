package listview

import (
	"sort"
	"strings"

	"github.com/mmcdole/todoadmin/internal/domain"
	"github.com/sahilm/fuzzy"
)

// filterSource implements sahilm/fuzzy.Source over lowercased filter text
type filterSource[T domain.ListItem] []T

func (s filterSource[T]) String(i int) string { return strings.ToLower(s[i].FilterText()) }
func (s filterSource[T]) Len() int            { return len(s) }

// Filter returns the items whose filter text fuzzily matches query, in input order.
// An empty query returns a copy of items.
func Filter[T domain.ListItem](items []T, query string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), filterSource[T](items))

	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	// Sort runs after filtering; keep input order so ties stay stable
	sort.Ints(idx)

	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
