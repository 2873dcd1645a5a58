package app_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jsalvesen/placeholder-gateway/internal/app"
	"github.com/jsalvesen/placeholder-gateway/internal/domain"
)

// fakeClient is a hand-rolled PlaceholderClient for service tests.
type fakeClient struct {
	todos    []domain.Todo
	users    []domain.User
	todosErr error
	usersErr error
}

func (f *fakeClient) ListTodos(_ context.Context) ([]domain.Todo, error) {
	return f.todos, f.todosErr
}

func (f *fakeClient) ListUsers(_ context.Context) ([]domain.User, error) {
	return f.users, f.usersErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestTodoService_ListTodos(t *testing.T) {
	t.Parallel()

	want := []domain.Todo{
		{ID: 1, UserID: 1, Title: "delectus aut autem"},
		{ID: 2, UserID: 1, Title: "quis ut nam", Completed: true},
	}
	svc := app.NewTodoService(&fakeClient{todos: want}, discardLogger())

	got, err := svc.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("ListTodos() error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("todos[%d] = %+v, want %+v (pass-through, unmodified)", i, got[i], want[i])
		}
	}
}

func TestTodoService_ListTodosPropagatesError(t *testing.T) {
	t.Parallel()

	svc := app.NewTodoService(&fakeClient{todosErr: domain.ErrUnavailable}, discardLogger())

	_, err := svc.ListTodos(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListTodos() error = %v, want ErrUnavailable", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	want := []domain.User{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
	}
	svc := app.NewUserService(&fakeClient{users: want}, discardLogger())

	got, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers() error: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("ListUsers() = %+v, want %+v", got, want)
	}
}

func TestUserService_ListUsersPropagatesError(t *testing.T) {
	t.Parallel()

	svc := app.NewUserService(&fakeClient{usersErr: domain.ErrUnavailable}, discardLogger())

	_, err := svc.ListUsers(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListUsers() error = %v, want ErrUnavailable", err)
	}
}
