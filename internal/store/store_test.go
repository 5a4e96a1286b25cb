package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/todoadmin/internal/domain"
)

func sampleTodos() []*domain.Todo {
	return []*domain.Todo{
		{ID: "t1", Title: "first", UserID: "u1", Completed: true},
		{ID: "t2", Title: "second", UserID: "u2"},
	}
}

func TestCollectionStore_MemoryOnly(t *testing.T) {
	s, err := NewCollectionStore("", "")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetTodos()
	assert.False(t, ok)

	require.NoError(t, s.SaveTodos(sampleTodos()))
	got, ok := s.GetTodos()
	require.True(t, ok)
	assert.Equal(t, sampleTodos(), got)

	s.InvalidateTodos()
	_, ok = s.GetTodos()
	assert.False(t, ok)
}

func TestCollectionStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewCollectionStore(dir, "http://localhost:3900/api")
	require.NoError(t, err)
	require.NoError(t, s.SaveUsers([]*domain.User{{ID: "u1", Name: "Ada", Email: "ada@example.com", IsAdmin: true}}))
	require.NoError(t, s.SaveOwnerTodos("u1", sampleTodos()[:1]))
	require.NoError(t, s.Close())

	reopened, err := NewCollectionStore(dir, "http://localhost:3900/api/")
	require.NoError(t, err)
	defer reopened.Close()

	users, ok := reopened.GetUsers()
	require.True(t, ok)
	assert.Equal(t, "Ada", users[0].Name)
	assert.True(t, users[0].IsAdmin)

	owned, ok := reopened.GetOwnerTodos("u1")
	require.True(t, ok)
	assert.Equal(t, sampleTodos()[:1], owned)
}

func TestCollectionStore_SeparatesServers(t *testing.T) {
	dir := t.TempDir()

	a, err := NewCollectionStore(dir, "http://a.example.com")
	require.NoError(t, err)
	require.NoError(t, a.SaveTodos(sampleTodos()))
	require.NoError(t, a.Close())

	b, err := NewCollectionStore(dir, "http://b.example.com")
	require.NoError(t, err)
	defer b.Close()

	_, ok := b.GetTodos()
	assert.False(t, ok)
}

func TestCollectionStore_InvalidateOwnerTodos(t *testing.T) {
	s, err := NewCollectionStore(t.TempDir(), "")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveTodos(sampleTodos()))
	require.NoError(t, s.SaveOwnerTodos("u1", sampleTodos()[:1]))
	require.NoError(t, s.SaveOwnerTodos("u2", sampleTodos()[1:]))

	s.InvalidateOwnerTodos("u1")

	_, ok := s.GetOwnerTodos("u1")
	assert.False(t, ok)
	_, ok = s.GetTodos()
	assert.False(t, ok, "combined list is stale once an owner's list changes")
	_, ok = s.GetOwnerTodos("u2")
	assert.True(t, ok)
}

func TestCollectionStore_InvalidateAll(t *testing.T) {
	s, err := NewCollectionStore(t.TempDir(), "")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveTodos(sampleTodos()))
	require.NoError(t, s.SaveOwnerTodos("u1", sampleTodos()))
	require.NoError(t, s.SaveUsers([]*domain.User{{ID: "u1"}}))

	s.InvalidateAll()

	_, ok := s.GetTodos()
	assert.False(t, ok)
	_, ok = s.GetOwnerTodos("u1")
	assert.False(t, ok)
	_, ok = s.GetUsers()
	assert.False(t, ok)

	// Buckets are usable after being cleared
	require.NoError(t, s.SaveUsers([]*domain.User{{ID: "u2"}}))
	users, ok := s.GetUsers()
	require.True(t, ok)
	assert.Equal(t, "u2", users[0].ID)
}

func TestHashServerURL_Normalizes(t *testing.T) {
	assert.Equal(t, hashServerURL("HTTP://Example.com/api/"), hashServerURL("http://example.com/api"))
	assert.Len(t, hashServerURL("http://example.com"), 12)
}
