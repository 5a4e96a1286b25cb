package listview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/todoadmin/internal/listview"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// TestPaginate_Length checks len == max(0, min(size, n-(page-1)*size)) over a grid.
func TestPaginate_Length(t *testing.T) {
	for n := 0; n <= 20; n++ {
		items := ints(n)
		for size := 1; size <= 7; size++ {
			for page := 1; page <= 6; page++ {
				want := max(0, min(size, n-(page-1)*size))
				got := listview.Paginate(items, page, size)
				assert.Len(t, got, want, "n=%d size=%d page=%d", n, size, page)
			}
		}
	}
}

// TestPaginate_Slice verifies the exact items on a page.
func TestPaginate_Slice(t *testing.T) {
	items := ints(20)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, listview.Paginate(items, 1, 6))
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12}, listview.Paginate(items, 2, 6))
	assert.Equal(t, []int{19, 20}, listview.Paginate(items, 4, 6))
}

// TestPaginate_PastEnd verifies pages past the end are empty, not errors.
func TestPaginate_PastEnd(t *testing.T) {
	got := listview.Paginate(ints(5), 2, 6)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestPaginate_InvalidArguments verifies degenerate inputs never panic.
func TestPaginate_InvalidArguments(t *testing.T) {
	items := ints(10)

	assert.Empty(t, listview.Paginate(items, 0, 6))
	assert.Empty(t, listview.Paginate(items, -3, 6))
	assert.Empty(t, listview.Paginate(items, 1, 0))
	assert.Empty(t, listview.Paginate(items, int(^uint(0)>>1), 6))
}

// TestPaginate_Idempotent verifies repeated calls return identical pages.
func TestPaginate_Idempotent(t *testing.T) {
	items := ints(13)

	first := listview.Paginate(items, 2, 6)
	second := listview.Paginate(items, 2, 6)

	assert.Equal(t, first, second)
}

// TestPaginate_ReturnsCopy verifies the page does not alias the input.
func TestPaginate_ReturnsCopy(t *testing.T) {
	items := ints(6)

	page := listview.Paginate(items, 1, 6)
	page[0] = 99

	assert.Equal(t, 1, items[0])
}

// TestPageCursor verifies lockstep previous page and the lower bound.
func TestPageCursor(t *testing.T) {
	c := listview.FirstPage()
	assert.Equal(t, 1, c.Current)
	assert.Equal(t, 0, c.Previous())

	c = c.Forward().Forward()
	assert.Equal(t, 3, c.Current)
	assert.Equal(t, 2, c.Previous())

	c = c.Back().Back().Back().Back()
	assert.Equal(t, 1, c.Current)
	assert.Equal(t, 0, c.Previous())
}

// TestNewPageMeta covers page counts and navigation hints.
func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name            string
		total, page     int
		size            int
		wantPages       int
		wantPrev, wantN bool
	}{
		{name: "empty", total: 0, page: 1, size: 6, wantPages: 0},
		{name: "single partial page", total: 5, page: 1, size: 6, wantPages: 1},
		{name: "first of many", total: 20, page: 1, size: 6, wantPages: 4, wantN: true},
		{name: "middle", total: 20, page: 2, size: 6, wantPages: 4, wantPrev: true, wantN: true},
		{name: "last", total: 20, page: 4, size: 6, wantPages: 4, wantPrev: true},
		{name: "past end", total: 5, page: 3, size: 6, wantPages: 1, wantPrev: true},
		{name: "default size", total: 7, page: 1, size: 0, wantPages: 2, wantN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := listview.NewPageMeta(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantPrev, meta.HasPrevious)
			assert.Equal(t, tt.wantN, meta.HasNext)
			assert.Equal(t, tt.total, meta.TotalItems)
		})
	}
}
