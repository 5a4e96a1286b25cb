package listview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/todoadmin/internal/domain"
	"github.com/mmcdole/todoadmin/internal/listview"
)

func TestColumn_Cell(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", IsAdmin: true}

	assert.Equal(t, "Ada", listview.DataColumn[*domain.User]("name", "User Name").Cell(user))
	assert.Equal(t, "yes", listview.DataColumn[*domain.User]("isAdmin", "Admin").Cell(user))
	assert.Equal(t, "", listview.DataColumn[*domain.User]("missing", "?").Cell(user))

	link := listview.ComputedColumn("email", "User Email", func(u *domain.User) string {
		return "<" + u.Email + ">"
	})
	assert.Equal(t, "<ada@example.com>", link.Cell(user))
	assert.False(t, link.Sortable)
}

func TestSortableColumns(t *testing.T) {
	cols := []listview.Column[*domain.User]{
		listview.DataColumn[*domain.User]("name", "User Name"),
		listview.ComputedColumn[*domain.User]("delete", "", func(*domain.User) string { return "x" }),
		listview.DataColumn[*domain.User]("email", "User Email").WithWidth(30),
	}

	sortable := listview.SortableColumns(cols)

	if assert.Len(t, sortable, 2) {
		assert.Equal(t, "name", sortable[0].Field)
		assert.Equal(t, "email", sortable[1].Field)
		assert.Equal(t, 30, sortable[1].Width)
	}
}

func TestFilter(t *testing.T) {
	items := todos("walk dog", "buy milk", "call mom", "buy bread")

	assert.Equal(t, []string{"buy milk", "buy bread"}, titlesOf(listview.Filter(items, "buy")))
	assert.Equal(t, []string{"walk dog", "buy milk", "call mom", "buy bread"}, titlesOf(listview.Filter(items, "  ")))
	assert.Empty(t, listview.Filter(items, "qqq"))
	assert.Equal(t, []string{"buy milk"}, titlesOf(listview.Filter(items, "MILK")))
}

func TestColumn_WithRenderKeepsSortField(t *testing.T) {
	col := listview.DataColumn[*domain.Todo]("completed", "Status").
		WithRender(func(td *domain.Todo) string { return td.Status() })

	assert.True(t, col.Sortable)
	assert.Equal(t, "completed", col.Field)
	assert.Equal(t, "done", col.Cell(&domain.Todo{Completed: true}))
	assert.Equal(t, "open", col.Cell(&domain.Todo{}))
}
