package listview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/todoadmin/internal/domain"
	"github.com/mmcdole/todoadmin/internal/listview"
)

func todos(titles ...string) []*domain.Todo {
	out := make([]*domain.Todo, len(titles))
	for i, title := range titles {
		out[i] = &domain.Todo{ID: title + "-id", Title: title}
	}
	return out
}

func titlesOf(items []*domain.Todo) []string {
	out := make([]string, len(items))
	for i, t := range items {
		out[i] = t.Title
	}
	return out
}

// TestSort_Ascending verifies lexicographic ordering by title.
func TestSort_Ascending(t *testing.T) {
	items := todos("pear", "apple", "fig")

	sorted := listview.Sort(items, listview.SortSpec{Field: "title"})

	assert.Equal(t, []string{"apple", "fig", "pear"}, titlesOf(sorted))
}

// TestSort_DoesNotMutateInput verifies the input slice keeps its order.
func TestSort_DoesNotMutateInput(t *testing.T) {
	items := todos("pear", "apple", "fig")

	_ = listview.Sort(items, listview.SortSpec{Field: "title", Direction: listview.Descending})

	assert.Equal(t, []string{"pear", "apple", "fig"}, titlesOf(items))
}

// TestSort_DescendingIsReverseOfAscending verifies asc reversed equals desc for distinct keys.
func TestSort_DescendingIsReverseOfAscending(t *testing.T) {
	items := todos("m", "c", "x", "a", "q", "b")

	asc := listview.Sort(items, listview.SortSpec{Field: "title", Direction: listview.Ascending})
	desc := listview.Sort(items, listview.SortSpec{Field: "title", Direction: listview.Descending})

	reversed := make([]string, len(asc))
	for i, title := range titlesOf(asc) {
		reversed[len(asc)-1-i] = title
	}
	assert.Equal(t, reversed, titlesOf(desc))
}

// TestSort_StableForEqualKeys verifies ties keep input order in both directions.
func TestSort_StableForEqualKeys(t *testing.T) {
	items := []*domain.Todo{
		{ID: "1", Title: "b"},
		{ID: "2", Title: "a"},
		{ID: "3", Title: "b"},
		{ID: "4", Title: "a"},
	}

	ids := func(in []*domain.Todo) []string {
		out := make([]string, len(in))
		for i, t := range in {
			out[i] = t.ID
		}
		return out
	}

	asc := listview.Sort(items, listview.SortSpec{Field: "title"})
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(asc))

	desc := listview.Sort(items, listview.SortSpec{Field: "title", Direction: listview.Descending})
	assert.Equal(t, []string{"1", "3", "2", "4"}, ids(desc))
}

// TestSort_UnknownFieldKeepsOrder verifies an unknown field is all-equal and never panics.
func TestSort_UnknownFieldKeepsOrder(t *testing.T) {
	items := todos("pear", "apple", "fig")

	assert.NotPanics(t, func() {
		sorted := listview.Sort(items, listview.SortSpec{Field: "nope"})
		assert.Equal(t, []string{"pear", "apple", "fig"}, titlesOf(sorted))
	})
}

// TestSort_BoolField verifies false sorts before true.
func TestSort_BoolField(t *testing.T) {
	items := []*domain.Todo{
		{ID: "1", Title: "a", Completed: true},
		{ID: "2", Title: "b", Completed: false},
	}

	sorted := listview.Sort(items, listview.SortSpec{Field: "completed"})

	assert.Equal(t, "2", sorted[0].ID)
	assert.Equal(t, "1", sorted[1].ID)
}

// TestSort_Empty verifies an empty input yields an empty, non-nil result.
func TestSort_Empty(t *testing.T) {
	sorted := listview.Sort([]*domain.Todo{}, listview.SortSpec{Field: "title"})

	require.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

// TestParseSortExpression covers accepted and rejected expressions.
func TestParseSortExpression(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    listview.SortSpec
		wantErr bool
	}{
		{name: "field only", expr: "title", want: listview.SortSpec{Field: "title"}},
		{name: "explicit asc", expr: "name:asc", want: listview.SortSpec{Field: "name"}},
		{
			name: "explicit desc",
			expr: "email:DESC",
			want: listview.SortSpec{Field: "email", Direction: listview.Descending},
		},
		{name: "trimmed", expr: " title : desc ", want: listview.SortSpec{Field: "title", Direction: listview.Descending}},
		{name: "empty", expr: "", wantErr: true},
		{name: "empty field", expr: ":asc", wantErr: true},
		{name: "bad order", expr: "title:sideways", wantErr: true},
		{name: "too many parts", expr: "a:b:c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := listview.ParseSortExpression(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestDirection_Toggle verifies direction flipping and labels.
func TestDirection_Toggle(t *testing.T) {
	assert.Equal(t, listview.Descending, listview.Ascending.Toggle())
	assert.Equal(t, listview.Ascending, listview.Descending.Toggle())
	assert.Equal(t, "title:desc", listview.SortSpec{Field: "title", Direction: listview.Descending}.String())
}
