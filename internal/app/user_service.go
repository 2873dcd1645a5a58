package app

import (
	"context"
	"log/slog"

	"github.com/jsalvesen/placeholder-gateway/internal/domain"
	"github.com/jsalvesen/placeholder-gateway/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService by delegating to the upstream
// client port.
type UserService struct {
	client ports.PlaceholderClient
	logger *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(client ports.PlaceholderClient, logger *slog.Logger) *UserService {
	return &UserService{
		client: client,
		logger: logger,
	}
}

// ListUsers returns every upstream user. The optional count wrapping is a
// presentation concern handled in the HTTP layer.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "listed users", slog.Int("count", len(users)))
	return users, nil
}
