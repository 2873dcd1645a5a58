package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsalvesen/placeholder-gateway/internal/domain"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// parseBoolQuery reads an optional boolean query parameter. An absent or
// empty parameter is false. Any value strconv.ParseBool rejects is a
// validation error naming the parameter.
func parseBoolQuery(r *http.Request, param string) (bool, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &domain.ValidationError{
			Fields: map[string]string{param: fmt.Sprintf("must be a boolean, got %q", raw)},
		}
	}
	return v, nil
}
