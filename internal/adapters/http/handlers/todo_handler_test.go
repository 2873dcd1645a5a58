package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsalvesen/placeholder-gateway/internal/adapters/http/dto"
	"github.com/jsalvesen/placeholder-gateway/internal/adapters/http/handlers"
	"github.com/jsalvesen/placeholder-gateway/internal/domain"
)

func TestListTodos_ReturnsBareArray(t *testing.T) {
	t.Parallel()

	todos := []domain.Todo{
		{ID: 1, UserID: 1, Title: "delectus aut autem", Completed: false},
		{ID: 2, UserID: 1, Title: "quis ut nam", Completed: true},
	}
	h := handlers.NewTodoHandler(&fakeTodoService{todos: todos})

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	body := decodeJSON[[]dto.TodoResponse](t, rec)
	if len(body) != 2 {
		t.Fatalf("len(body) = %d, want 2", len(body))
	}
	if body[0].ID != 1 || body[0].UserID != 1 || body[0].Title != "delectus aut autem" {
		t.Errorf("body[0] = %+v, want upstream record unmodified", body[0])
	}
	if !body[1].Completed {
		t.Error("body[1].Completed = false, want true")
	}
}

func TestListTodos_EmptyUpstream(t *testing.T) {
	t.Parallel()

	h := handlers.NewTodoHandler(&fakeTodoService{})

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want empty array", got)
	}
}

func TestListTodos_UpstreamFailure(t *testing.T) {
	t.Parallel()

	h := handlers.NewTodoHandler(&fakeTodoService{
		err: fmt.Errorf("GET /todos: status 503: %w", domain.ErrUnavailable),
	})

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	requireStatus(t, rec, http.StatusBadGateway)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	body := decodeJSON[dto.ErrorResponse](t, rec)
	if body.Status != http.StatusBadGateway {
		t.Errorf("body.Status = %d, want 502", body.Status)
	}
	// No partial data leaks alongside the error.
	if strings.Contains(rec.Body.String(), "userId") {
		t.Error("error response contains todo data, want error body only")
	}
}
