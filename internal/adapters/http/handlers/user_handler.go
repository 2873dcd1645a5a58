package handlers

import (
	"net/http"

	"github.com/jsalvesen/placeholder-gateway/internal/adapters/http/dto"
	"github.com/jsalvesen/placeholder-gateway/internal/ports"
)

// UserHandler handles the GET /users endpoint.
type UserHandler struct {
	svc ports.UserService
}

// NewUserHandler creates a UserHandler backed by the given service port.
func NewUserHandler(svc ports.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers handles GET /users. The response is wrapped as {users: [...]};
// when the optional count query parameter is true, the wrapper becomes
// {count, users: [...]}. A non-boolean count value is a 400.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	withCount, err := parseBoolQuery(r, "count")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users, withCount))
}
