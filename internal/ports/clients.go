package ports

import (
	"context"

	"github.com/jsalvesen/placeholder-gateway/internal/domain"
)

// PlaceholderClient defines the client port for the upstream demo API.
// Implemented by the outbound adapter; called by the application layer.
// Methods map 1:1 to upstream read endpoints.
type PlaceholderClient interface {
	// ListTodos fetches all todos from the upstream API.
	// Returns domain.ErrUnavailable on transport failure, a non-success
	// status, or a malformed response body.
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// ListUsers fetches all users from the upstream API.
	// Same failure semantics as ListTodos.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
