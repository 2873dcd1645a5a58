// Package placeholder implements the outbound adapter for the upstream demo
// JSON API. It translates the upstream's wire representations into domain
// types and maps every failure mode (transport error, non-success status,
// malformed body, records failing domain validation) to
// domain.ErrUnavailable, which the HTTP layer surfaces as a server error.
package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsalvesen/placeholder-gateway/internal/domain"
	"github.com/jsalvesen/placeholder-gateway/internal/platform/httpclient"
	"github.com/jsalvesen/placeholder-gateway/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PlaceholderClient = (*Client)(nil)
	_ ports.HealthChecker     = (*Client)(nil)
)

// Fixed upstream paths. The base URL comes from configuration; these two
// endpoints are the only ones this service consumes.
const (
	todosPath = "/todos"
	usersPath = "/users"
)

// Client is the outbound adapter for the upstream demo API. It implements
// [ports.PlaceholderClient] on top of the instrumented [httpclient.Client].
type Client struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the upstream
// API root (e.g. "https://jsonplaceholder.typicode.com").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{client: client, logger: logger}
}

// ListTodos fetches all todos from GET /todos and returns them translated
// to domain entities in upstream order.
func (c *Client) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	var dtos []TodoDTO
	if err := c.get(ctx, todosPath, &dtos); err != nil {
		return nil, err
	}

	todos := ToDomainTodoList(dtos)
	for i := range todos {
		if err := todos[i].Validate(); err != nil {
			return nil, c.invalidRecord(ctx, todosPath, i, err)
		}
	}
	return todos, nil
}

// ListUsers fetches all users from GET /users and returns them translated
// to domain entities in upstream order.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var dtos []UserDTO
	if err := c.get(ctx, usersPath, &dtos); err != nil {
		return nil, err
	}

	users := ToDomainUserList(dtos)
	for i := range users {
		if err := users[i].Validate(); err != nil {
			return nil, c.invalidRecord(ctx, usersPath, i, err)
		}
	}
	return users, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value matches the service name used by the
// underlying [httpclient.Client] for tracing and metrics.
func (c *Client) Name() string {
	return c.client.Name()
}

// HealthCheck reports upstream availability by delegating to the underlying
// client's probe.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

// get executes a GET against the upstream, requires a 200, and decodes the
// JSON body into out. All failure modes wrap domain.ErrUnavailable.
func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.client.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		c.logger.ErrorContext(ctx, "upstream request failed",
			slog.String("method", http.MethodGet),
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("GET %s: %v: %w", path, err, domain.ErrUnavailable)
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "upstream returned non-success status",
			slog.String("method", http.MethodGet),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("GET %s: status %d: %w", path, resp.StatusCode, domain.ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.ErrorContext(ctx, "upstream returned malformed body",
			slog.String("method", http.MethodGet),
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("decoding response from GET %s: %v: %w", path, err, domain.ErrUnavailable)
	}

	return nil
}

// invalidRecord reports an upstream record that failed domain validation.
// Garbage from the upstream is an availability problem for this service,
// not a caller error, so it wraps domain.ErrUnavailable.
func (c *Client) invalidRecord(ctx context.Context, path string, index int, err error) error {
	c.logger.ErrorContext(ctx, "upstream returned invalid record",
		slog.String("path", path),
		slog.Int("index", index),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("GET %s: record %d: %v: %w", path, index, err, domain.ErrUnavailable)
}

// closeBody closes an HTTP response body and logs on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
