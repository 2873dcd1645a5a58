package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/jsalvesen/placeholder-gateway/internal/domain"
	"github.com/jsalvesen/placeholder-gateway/internal/ports"
)

// --- Shared fakes ---

type fakeTodoService struct {
	todos []domain.Todo
	err   error
}

func (f *fakeTodoService) ListTodos(_ context.Context) ([]domain.Todo, error) {
	return f.todos, f.err
}

type fakeUserService struct {
	users []domain.User
	err   error
}

func (f *fakeUserService) ListUsers(_ context.Context) ([]domain.User, error) {
	return f.users, f.err
}

// fakeRegistry returns canned health results without running real checks.
type fakeRegistry struct {
	results map[string]error
}

func (f *fakeRegistry) Register(_ ports.HealthChecker) {}

func (f *fakeRegistry) CheckAll(_ context.Context) map[string]error {
	return f.results
}

// --- Shared assertions ---

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}
