package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/todoadmin/internal/listview"
)

func userSortOptions() []SortOption {
	return []SortOption{
		{Field: "name", Label: "User Name"},
		{Field: "email", Label: "User Email"},
	}
}

func TestSortModal_ActiveFieldToggles(t *testing.T) {
	m := NewSortModal()
	m.Show(userSortOptions(), listview.SortSpec{Field: "name"})

	handled, sel := m.HandleKey("enter")

	assert.True(t, handled)
	require.NotNil(t, sel)
	assert.Equal(t, listview.SortSpec{Field: "name", Direction: listview.Descending}, *sel)
	assert.False(t, m.IsVisible())
}

func TestSortModal_NewFieldStartsAscending(t *testing.T) {
	m := NewSortModal()
	m.Show(userSortOptions(), listview.SortSpec{Field: "name", Direction: listview.Descending})

	m.HandleKey("j")
	_, sel := m.HandleKey("enter")

	require.NotNil(t, sel)
	assert.Equal(t, listview.SortSpec{Field: "email", Direction: listview.Ascending}, *sel)
}

func TestSortModal_CancelAndConsume(t *testing.T) {
	m := NewSortModal()
	handled, _ := m.HandleKey("enter")
	assert.False(t, handled, "hidden modal ignores keys")

	m.Show(userSortOptions(), listview.SortSpec{Field: "email"})
	assert.Contains(t, m.View(), "User Email")

	handled, sel := m.HandleKey("x")
	assert.True(t, handled)
	assert.Nil(t, sel)
	assert.True(t, m.IsVisible())

	_, sel = m.HandleKey("esc")
	assert.Nil(t, sel)
	assert.False(t, m.IsVisible())
	assert.Empty(t, m.View())
}

func TestInputModal_SubmitAndCancel(t *testing.T) {
	m := NewInputModal()
	m.Show("Jump to user", "name or email")

	for _, r := range "ada" {
		m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "ada", m.Value())

	m, _, submitted := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, submitted)

	m, _, submitted = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, submitted)
	assert.False(t, m.IsVisible())
}

func TestRenderPager(t *testing.T) {
	out := RenderPager(listview.NewPageMeta(20, 2, 6))
	assert.Contains(t, out, "Page 2 of 4")

	out = RenderPager(listview.NewPageMeta(5, 3, 6))
	assert.Contains(t, out, "Page 3 (past end of 1)")

	out = RenderPager(listview.NewPageMeta(0, 1, 6))
	assert.Contains(t, out, "Page 1 of 1")
}

func TestRenderNavbar(t *testing.T) {
	out := RenderNavbar("todoadmin", []NavTab{
		{Key: "1", Label: "Todos", Count: 9},
		{Key: "2", Label: "Users", Count: -1},
	}, 0)

	assert.Contains(t, out, "1 Todos (9)")
	assert.Contains(t, out, "2 Users")
	assert.NotContains(t, out, "(-1)")
}
