// Package dto provides HTTP response data transfer objects and RFC 9457
// Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsalvesen/placeholder-gateway/internal/domain"
)

// TodoResponse represents a single todo in HTTP responses. The field names
// deliberately match the upstream API so callers see the records unmodified.
type TodoResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Completed: t.Completed,
	}
}

// ToTodoListResponse converts domain todos to the bare JSON array the
// /todos endpoint returns.
func ToTodoListResponse(todos []domain.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// UserResponse represents a single user in HTTP responses.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserListResponse wraps the /users payload. Count is present only when the
// caller asked for it via ?count=true; a nil pointer omits the field
// entirely, while a zero count still serializes as "count": 0.
type UserListResponse struct {
	Count *int           `json:"count,omitempty"`
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
	}
}

// ToUserListResponse converts domain users to the /users envelope.
// withCount controls whether the count field is included.
func ToUserListResponse(users []domain.User, withCount bool) UserListResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}

	resp := UserListResponse{Users: items}
	if withCount {
		n := len(items)
		resp.Count = &n
	}
	return resp
}

// HealthResponse represents the /health payload: overall status, the two
// dependency fields, and the current timestamp.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Application string `json:"application"`
	Timestamp   string `json:"timestamp"`
}

// NewHealthResponse builds a HealthResponse for the given dependency states
// and timestamp. The timestamp is formatted as RFC 3339 with nanoseconds so
// successive calls are strictly ordered.
func NewHealthResponse(database, application string, now time.Time) HealthResponse {
	return HealthResponse{
		Status:      "healthy",
		Database:    database,
		Application: application,
		Timestamp:   now.Format(time.RFC3339Nano),
	}
}
