package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/todoadmin/internal/adapter"
	"github.com/mmcdole/todoadmin/internal/adapter/source/rest"
	"github.com/mmcdole/todoadmin/internal/domain"
	"github.com/mmcdole/todoadmin/internal/mockapi"
)

const testToken = "secret"

func newBackend(t *testing.T) (*mockapi.Server, *rest.Client) {
	t.Helper()

	backend := mockapi.New(testToken, adapter.NullLogger())
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	client := rest.NewClient(srv.URL+mockapi.APIPrefix, testToken, adapter.NullLogger(),
		rest.WithRetryDelay(time.Millisecond))
	return backend, client
}

func TestClient_GetAllTodos(t *testing.T) {
	backend, client := newBackend(t)
	ada := backend.AddUser(rest.UserDTO{ID: "u1", Name: "Ada"})
	backend.AddTodo(rest.TodoDTO{ID: "t1", Title: "first", UserID: ada.ID, Completed: true})
	backend.AddTodo(rest.TodoDTO{ID: "t2", Title: "second", UserID: ada.ID})

	todos, err := client.GetAllTodos(context.Background())

	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, &domain.Todo{ID: "t1", Title: "first", Completed: true, UserID: "u1"}, todos[0])
	assert.Equal(t, "second", todos[1].Title)
}

func TestClient_GetTodosByOwner(t *testing.T) {
	backend, client := newBackend(t)
	backend.AddUser(rest.UserDTO{ID: "u1", Name: "Ada"})
	backend.AddUser(rest.UserDTO{ID: "u2", Name: "Alan"})
	backend.AddTodo(rest.TodoDTO{ID: "t1", Title: "mine", UserID: "u1"})
	backend.AddTodo(rest.TodoDTO{ID: "t2", Title: "theirs", UserID: "u2"})

	todos, err := client.GetTodosByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "mine", todos[0].Title)

	_, err = client.GetTodosByOwner(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_DeleteTodo(t *testing.T) {
	backend, client := newBackend(t)
	backend.AddTodo(rest.TodoDTO{ID: "t1", Title: "doomed"})

	require.NoError(t, client.DeleteTodo(context.Background(), "t1"))

	err := client.DeleteTodo(context.Background(), "t1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	todos, err := client.GetAllTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestClient_Users(t *testing.T) {
	backend, client := newBackend(t)
	backend.AddUser(rest.UserDTO{ID: "u1", Name: "Ada", Email: "ada@example.com", IsAdmin: true})
	backend.AddTodo(rest.TodoDTO{ID: "t1", Title: "orphan soon", UserID: "u1"})

	users, err := client.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, &domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", IsAdmin: true}, users[0])

	require.NoError(t, client.DeleteUser(context.Background(), "u1"))
	assert.ErrorIs(t, client.DeleteUser(context.Background(), "u1"), domain.ErrNotFound)

	todos, err := client.GetAllTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos, "deleting a user removes their todos")
}

func TestClient_AuthFailure(t *testing.T) {
	backend := mockapi.New(testToken, adapter.NullLogger())
	srv := httptest.NewServer(backend.Handler())
	defer srv.Close()

	client := rest.NewClient(srv.URL+mockapi.APIPrefix, "wrong", adapter.NullLogger())

	_, err := client.GetAllUsers(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestClient_RetriesGetOnServerError(t *testing.T) {
	backend, client := newBackend(t)
	backend.AddTodo(rest.TodoDTO{ID: "t1", Title: "eventually"})
	backend.FailNext(http.StatusInternalServerError, 2)

	todos, err := client.GetAllTodos(context.Background())

	require.NoError(t, err)
	assert.Len(t, todos, 1)
	assert.Equal(t, 3, backend.Requests(http.MethodGet, "/api/todos"))
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	backend, client := newBackend(t)
	backend.FailNext(http.StatusBadGateway, 10)

	_, err := client.GetAllUsers(context.Background())

	require.ErrorIs(t, err, domain.ErrServer)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, 4, backend.Requests(http.MethodGet, "/api/users"))
}

func TestClient_DeleteIsNotRetried(t *testing.T) {
	backend, client := newBackend(t)
	backend.AddTodo(rest.TodoDTO{ID: "t1", Title: "stays"})
	backend.FailNext(http.StatusInternalServerError, 1)

	err := client.DeleteTodo(context.Background(), "t1")

	require.ErrorIs(t, err, domain.ErrServer)
	assert.Equal(t, 1, backend.Requests(http.MethodDelete, "/api/todos/t1"))
}

func TestClient_ClientErrorMapsToServerError(t *testing.T) {
	backend, client := newBackend(t)
	backend.FailNext(http.StatusBadRequest, 1)

	_, err := client.GetAllTodos(context.Background())

	require.ErrorIs(t, err, domain.ErrServer)
	assert.Contains(t, err.Error(), "injected failure")
	assert.Equal(t, 1, backend.Requests(http.MethodGet, "/api/todos"))
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := rest.NewClient(url, "", adapter.NullLogger())

	_, err := client.GetAllTodos(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestClient_CanceledContext(t *testing.T) {
	_, client := newBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetAllTodos(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapTodos_SkipsMissingIDs(t *testing.T) {
	todos := rest.MapTodos([]rest.TodoDTO{{Title: "ghost"}, {ID: "t1", Title: "real"}})

	require.Len(t, todos, 1)
	assert.Equal(t, "t1", todos[0].ID)
	assert.Equal(t, rest.TodoDTO{ID: "t1", Title: "real"}, rest.TodoToDTO(todos[0]))
}
