package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/todoadmin/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	maxRetries     = 3
	baseRetryDelay = 500 * time.Millisecond

	// TokenHeader carries the configured API token
	TokenHeader = "x-auth-token"
)

// Client implements domain.DataSource against the todo REST backend
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	retryDelay time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRetryDelay sets the base backoff between retries
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// NewClient creates a new backend API client
func NewClient(baseURL, token string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:     logger,
		retryDelay: baseRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs an authenticated HTTP request against the backend.
// Idempotent requests are retried with exponential backoff on 5xx responses.
func (c *Client) doRequest(ctx context.Context, method, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	retries := 0
	if method == http.MethodGet {
		retries = maxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		// Check context before each attempt
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Wait before retry (exponential backoff)
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<(attempt-1)) // 500ms, 1s, 2s
			c.logger.Debug("retrying request", "attempt", attempt, "delay", delay, "url", reqURL)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set(TokenHeader, c.token)
		}

		c.logger.Debug("backend request", "method", method, "url", reqURL, "attempt", attempt)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Error("backend request failed", "error", err, "url", reqURL)
			return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrNetwork)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", errors.Join(domain.ErrNetwork, err))
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return body, nil

		case resp.StatusCode == http.StatusNotFound:
			return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrNotFound)

		case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
			return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrAuthFailed)

		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("%s %s: status %d%s: %w", method, path, resp.StatusCode, errorMessage(body), domain.ErrServer)
			c.logger.Warn("backend server error",
				"status", resp.StatusCode,
				"body", string(body),
				"attempt", attempt,
				"maxRetries", retries,
				"path", path,
			)
			continue

		default:
			c.logger.Error("backend request error", "status", resp.StatusCode, "body", string(body))
			return nil, fmt.Errorf("%s %s: status %d%s: %w", method, path, resp.StatusCode, errorMessage(body), domain.ErrServer)
		}
	}

	c.logger.Error("backend request failed after retries", "error", lastErr, "url", reqURL)
	return nil, lastErr
}

// errorMessage extracts a message from an error body for wrapping
func errorMessage(body []byte) string {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return " (" + er.Message + ")"
	}
	return ""
}

// GetAllTodos returns every todo
func (c *Client) GetAllTodos(ctx context.Context) ([]*domain.Todo, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/todos")
	if err != nil {
		return nil, err
	}

	var dtos []TodoDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("failed to parse todos: %w", err)
	}
	return MapTodos(dtos), nil
}

// GetTodosByOwner returns the todos owned by ownerID
func (c *Client) GetTodosByOwner(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/todos/user/"+url.PathEscape(ownerID))
	if err != nil {
		return nil, err
	}

	var dtos []TodoDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("failed to parse todos: %w", err)
	}
	return MapTodos(dtos), nil
}

// DeleteTodo deletes a todo by ID
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id))
	return err
}

// GetAllUsers returns every user
func (c *Client) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/users")
	if err != nil {
		return nil, err
	}

	var dtos []UserDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("failed to parse users: %w", err)
	}
	return MapUsers(dtos), nil
}

// DeleteUser deletes a user by ID
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/users/"+url.PathEscape(id))
	return err
}
