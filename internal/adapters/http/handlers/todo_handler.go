// Package handlers contains the inbound HTTP handlers for the gateway's
// three endpoints. Handlers translate between HTTP and the service ports;
// they hold no business logic.
package handlers

import (
	"net/http"

	"github.com/jsalvesen/placeholder-gateway/internal/adapters/http/dto"
	"github.com/jsalvesen/placeholder-gateway/internal/ports"
)

// TodoHandler handles the GET /todos endpoint.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a TodoHandler backed by the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /todos. The upstream records are returned as a bare
// JSON array, unmodified and unpaginated. Upstream failures surface as an
// RFC 9457 server error with no partial data.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.ListTodos(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}
