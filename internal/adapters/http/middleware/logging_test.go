package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsalvesen/placeholder-gateway/internal/adapters/http/middleware"
	"github.com/jsalvesen/placeholder-gateway/internal/platform/logging"
)

func TestLogging_LogsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	out := buf.String()
	if !strings.Contains(out, "request started") {
		t.Error("log output missing \"request started\"")
	}
	if !strings.Contains(out, "request completed") {
		t.Error("log output missing \"request completed\"")
	}
	if !strings.Contains(out, `"path":"/todos"`) {
		t.Errorf("log output missing path attribute: %s", out)
	}
	if !strings.Contains(out, `"status":200`) {
		t.Errorf("log output missing status attribute: %s", out)
	}
}

func TestLogging_EnrichesWithIdentifiers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", http.NoBody)
	req.Header.Set("X-Request-ID", "req-777")
	req.Header.Set("X-Correlation-ID", "corr-888")
	handler.ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-777"`) {
		t.Errorf("log output missing request_id: %s", out)
	}
	if !strings.Contains(out, `"correlation_id":"corr-888"`) {
		t.Errorf("log output missing correlation_id: %s", out)
	}
}

func TestLogging_StoresLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "from handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if !strings.Contains(buf.String(), "from handler") {
		t.Error("handler log entry missing, want context logger wired to same output")
	}
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("debug", "json", &buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", http.NoBody)
	req.Header.Set("Authorization", "Bearer super-secret")
	handler.ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "request headers") {
		t.Fatal("debug header log entry missing at debug level")
	}
	if strings.Contains(out, "super-secret") {
		t.Error("log output contains raw Authorization value, want it redacted")
	}
}
