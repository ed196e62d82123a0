package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-assistant/internal/email"
	"personal-assistant/internal/httpserver"
	"personal-assistant/internal/middleware"
	"personal-assistant/internal/scheduler"
	"personal-assistant/pkg/log"
)

type fakeDB struct{ err error }

func (f fakeDB) PingContext(ctx context.Context) error { return f.err }

type fakeRunner struct{}

func (fakeRunner) Jobs() []scheduler.JobInfo                     { return nil }
func (fakeRunner) RunNow(ctx context.Context, name string) error { return nil }
func (fakeRunner) Pause(name string) error                       { return nil }
func (fakeRunner) Resume(name string) error                      { return nil }
func (fakeRunner) Remove(name string) error                      { return nil }

// fakeEmail only serves routes that never reach the use case.
type fakeEmail struct{ email.UseCase }

func newServer(t *testing.T, cfg httpserver.Config) http.Handler {
	t.Helper()
	cfg.Port = 8080
	cfg.Mode = "test"
	srv, err := httpserver.New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, httpserver.Config{DB: fakeDB{}})

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := get(h, path)
			if w.Code != http.StatusOK {
				t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
			}
			if w.Header().Get(middleware.HeaderRequestID) == "" {
				t.Error("expected a request id header")
			}
		})
	}

	t.Run("/metrics", func(t *testing.T) {
		w := get(h, "/metrics")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "go_goroutines") {
			t.Errorf("unexpected metrics response %d", w.Code)
		}
	})
}

func TestReadyWithoutDatabase(t *testing.T) {
	h := newServer(t, httpserver.Config{DB: fakeDB{err: errors.New("disk I/O error")}})
	if w := get(h, "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected %d but got %d", http.StatusServiceUnavailable, w.Code)
	}
}

func TestOptionalDomains(t *testing.T) {
	h := newServer(t, httpserver.Config{Scheduler: fakeRunner{}})

	if w := get(h, "/api/v1/scheduler/jobs"); w.Code != http.StatusOK {
		t.Errorf("scheduler routes should be mounted, got %d", w.Code)
	}
	if w := get(h, "/api/v1/tasks"); w.Code != http.StatusNotFound {
		t.Errorf("task routes should not be mounted, got %d", w.Code)
	}
	if w := get(h, "/api/v1/emails/labels"); w.Code != http.StatusNotFound {
		t.Errorf("email routes should not be mounted, got %d", w.Code)
	}

	h = newServer(t, httpserver.Config{EmailUC: fakeEmail{}})
	if w := get(h, "/api/v1/emails/labels"); w.Code != http.StatusOK {
		t.Errorf("email routes should be mounted, got %d", w.Code)
	}
}

func TestValidate(t *testing.T) {
	if _, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test"}); err == nil {
		t.Error("expected error for missing port")
	}
}
