package ports

import (
	"context"

	"github.com/jsalvesen/placeholder-gateway/internal/domain"
)

// TodoService defines the service port for todo read operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns every todo exposed by the upstream API, unmodified
	// and unpaginated. Returns domain.ErrUnavailable when the upstream
	// call fails.
	ListTodos(ctx context.Context) ([]domain.Todo, error)
}

// UserService defines the service port for user read operations.
type UserService interface {
	// ListUsers returns every user exposed by the upstream API.
	// Returns domain.ErrUnavailable when the upstream call fails.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
