// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces. The services here are thin read-through layers: they add
// structured logging and nothing else, because the gateway returns upstream
// data unmodified.
package app

import (
	"context"
	"log/slog"

	"github.com/jsalvesen/placeholder-gateway/internal/domain"
	"github.com/jsalvesen/placeholder-gateway/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService by delegating to the upstream
// client port.
type TodoService struct {
	client ports.PlaceholderClient
	logger *slog.Logger
}

// NewTodoService creates a TodoService. The client port provides access to
// the upstream API; the logger is used for structured request/error logging.
func NewTodoService(client ports.PlaceholderClient, logger *slog.Logger) *TodoService {
	return &TodoService{
		client: client,
		logger: logger,
	}
}

// ListTodos returns every upstream todo, unmodified and unpaginated.
func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.client.ListTodos(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "listed todos", slog.Int("count", len(todos)))
	return todos, nil
}
