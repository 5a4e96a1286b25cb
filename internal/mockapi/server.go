// Package mockapi serves an in-memory todo backend with the same REST contract
// as the production API. It backs the client tests and cmd/mockapi.
package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mmcdole/todoadmin/internal/adapter/source/rest"
)

// APIPrefix is the path every route is mounted under
const APIPrefix = "/api"

// Server is an in-memory todo backend
type Server struct {
	mu     sync.Mutex
	todos  map[string]rest.TodoDTO
	users  map[string]rest.UserDTO
	order  []string // todo insertion order
	uorder []string // user insertion order

	token  string
	logger *slog.Logger

	failStatus int
	failCount  int

	requests map[string]int
}

// New creates an empty server. A non-empty token is required in x-auth-token
// on every request.
func New(token string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		todos:    make(map[string]rest.TodoDTO),
		users:    make(map[string]rest.UserDTO),
		token:    token,
		logger:   logger,
		requests: make(map[string]int),
	}
}

// AddUser stores a user, assigning an ID when empty, and returns it
func (s *Server) AddUser(u rest.UserDTO) rest.UserDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if _, ok := s.users[u.ID]; !ok {
		s.uorder = append(s.uorder, u.ID)
	}
	s.users[u.ID] = u
	return u
}

// AddTodo stores a todo, assigning an ID when empty, and returns it
func (s *Server) AddTodo(t rest.TodoDTO) rest.TodoDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, ok := s.todos[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	s.todos[t.ID] = t
	return t
}

// Seed fills the server with a small demo dataset
func (s *Server) Seed() {
	ada := s.AddUser(rest.UserDTO{Name: "Ada Lovelace", Email: "ada@example.com", IsAdmin: true})
	alan := s.AddUser(rest.UserDTO{Name: "Alan Turing", Email: "alan@example.com"})
	grace := s.AddUser(rest.UserDTO{Name: "Grace Hopper", Email: "grace@example.com"})
	s.AddUser(rest.UserDTO{Name: "Edsger Dijkstra", Email: "edsger@example.com"})

	for _, t := range []rest.TodoDTO{
		{Title: "Write the first program", UserID: ada.ID, Completed: true},
		{Title: "Annotate the engine notes", UserID: ada.ID},
		{Title: "Break the naval cipher", UserID: alan.ID, Completed: true},
		{Title: "Draft the imitation game", UserID: alan.ID},
		{Title: "Build the bombe", UserID: alan.ID},
		{Title: "Find the moth", UserID: grace.ID, Completed: true},
		{Title: "Ship the compiler", UserID: grace.ID},
		{Title: "Teach nanoseconds", UserID: grace.ID},
		{Title: "Review COBOL draft", UserID: grace.ID},
	} {
		s.AddTodo(t)
	}
}

// FailNext makes the next count requests answer with status
func (s *Server) FailNext(status, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failCount = count
}

// Requests returns how many requests were made for "METHOD path"
func (s *Server) Requests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method+" "+path]
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.countRequests, s.injectFailures, s.requireToken)

	api := router.PathPrefix(APIPrefix).Subrouter()
	api.Methods(http.MethodGet).Path("/todos").HandlerFunc(s.listTodos)
	api.Methods(http.MethodGet).Path("/todos/user/{id}").HandlerFunc(s.listOwnerTodos)
	api.Methods(http.MethodDelete).Path("/todos/{id}").HandlerFunc(s.deleteTodo)
	api.Methods(http.MethodGet).Path("/users").HandlerFunc(s.listUsers)
	api.Methods(http.MethodDelete).Path("/users/{id}").HandlerFunc(s.deleteUser)

	return router
}

// === Middleware ===

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.Method+" "+r.URL.Path]++
		s.mu.Unlock()

		s.logger.Debug("mockapi request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status := 0
		if s.failCount > 0 {
			s.failCount--
			status = s.failStatus
		}
		s.mu.Unlock()

		if status != 0 {
			writeError(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get(rest.TokenHeader) != s.token {
			writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// === Handlers ===

func (s *Server) listTodos(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]rest.TodoDTO, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.todos[id])
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listOwnerTodos(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["id"]

	s.mu.Lock()
	_, known := s.users[ownerID]
	out := make([]rest.TodoDTO, 0)
	for _, id := range s.order {
		if t := s.todos[id]; t.UserID == ownerID {
			out = append(out, t)
		}
	}
	s.mu.Unlock()

	if !known {
		writeError(w, http.StatusNotFound, "The user with the given ID was not found.")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	t, ok := s.todos[id]
	if ok {
		delete(s.todos, id)
		s.order = without(s.order, id)
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "The todo with the given ID was not found.")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]rest.UserDTO, 0, len(s.uorder))
	for _, id := range s.uorder {
		out = append(out, s.users[id])
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

// deleteUser removes the user and every todo they own
func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	u, ok := s.users[id]
	if ok {
		delete(s.users, id)
		s.uorder = without(s.uorder, id)

		for tid, t := range s.todos {
			if t.UserID == id {
				delete(s.todos, tid)
				s.order = without(s.order, tid)
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "The user with the given ID was not found.")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// === Helpers ===

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, rest.ErrorResponse{Message: message})
}
