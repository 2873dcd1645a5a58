package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsalvesen/placeholder-gateway/internal/adapters/http/middleware"
)

func TestOpenTelemetry_PassesThrough(t *testing.T) {
	t.Parallel()

	// With no tracer provider configured the middleware uses no-op spans and
	// must remain transparent to the handler.
	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("[]"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Errorf("body = %q, want \"[]\"", rec.Body.String())
	}
}

// Swaps the global tracer provider, so it must not run in parallel.
func TestOpenTelemetry_RecordsServerSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}

	span := spans[0]
	if span.Name != "GET /todos" {
		t.Errorf("span name = %q, want \"GET /todos\"", span.Name)
	}
	if span.SpanKind != trace.SpanKindServer {
		t.Errorf("span kind = %v, want server", span.SpanKind)
	}
	if got := span.InstrumentationScope.Name; got != "github.com/jsalvesen/placeholder-gateway/internal/adapters/http/middleware" {
		t.Errorf("instrumentation scope = %q, want the middleware package path", got)
	}
	if span.Status.Code != codes.Error {
		t.Errorf("span status = %v, want error for a 502", span.Status.Code)
	}

	var sawStatus bool
	for _, attr := range span.Attributes {
		if attr.Key == attribute.Key("http.status_code") && attr.Value.AsInt64() == http.StatusBadGateway {
			sawStatus = true
		}
	}
	if !sawStatus {
		t.Error("span is missing the http.status_code attribute")
	}
}

func TestOpenTelemetry_NilMetricsSafe(t *testing.T) {
	t.Parallel()

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	rec := httptest.NewRecorder()
	// Must not panic recording metrics for an error status.
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}
