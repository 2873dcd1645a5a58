package handlers

import (
	"net/http"
	"time"

	"github.com/jsalvesen/placeholder-gateway/internal/adapters/http/dto"
	"github.com/jsalvesen/placeholder-gateway/internal/ports"
)

const (
	databaseCheckName = "database"

	statusConnected = "connected"
	statusRunning   = "running"
)

// HealthHandler handles the GET /health endpoint. The endpoint always
// returns 200 with status "healthy" and a current timestamp; the database
// and application fields carry per-dependency detail from the registry.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Health handles GET /health. The "database" check feeds the database
// field; any other registered check (the upstream API probe) feeds the
// application field. A failing check reports its error text in place of
// the healthy marker, but the response code stays 200: this endpoint
// reports, it does not gate.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	database := statusConnected
	application := statusRunning
	for name, err := range results {
		if err == nil {
			continue
		}
		if name == databaseCheckName {
			database = err.Error()
		} else {
			application = err.Error()
		}
	}

	writeJSON(w, http.StatusOK, dto.NewHealthResponse(database, application, time.Now()))
}
