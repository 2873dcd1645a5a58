package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	adapterhttp "github.com/jsalvesen/placeholder-gateway/internal/adapters/http"
	"github.com/jsalvesen/placeholder-gateway/internal/platform/config"
)

func serverConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0, // ephemeral port; Addr() still reports the configured value
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

func TestNewServer_Addr(t *testing.T) {
	t.Parallel()

	cfg := serverConfig()
	cfg.Port = 8080

	srv := adapterhttp.NewServer(cfg, http.NotFoundHandler(), nil)
	if got := srv.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want \"127.0.0.1:8080\"", got)
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	t.Parallel()

	srv := adapterhttp.NewServer(serverConfig(), http.NotFoundHandler(), nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Give the listener a moment to come up, then shut down gracefully.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Start() returned %v after graceful shutdown, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after Shutdown")
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	srv := adapterhttp.NewServer(serverConfig(), http.NotFoundHandler(), nil)

	go func() { _ = srv.Start() }()
	time.Sleep(50 * time.Millisecond)

	// A bare context gets the default shutdown timeout applied internally.
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
}
