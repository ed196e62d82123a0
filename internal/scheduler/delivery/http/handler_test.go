package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/scheduler"
	schedulerhttp "personal-assistant/internal/scheduler/delivery/http"
	"personal-assistant/pkg/log"
)

type mockRunner struct {
	err     error
	ran     string
	paused  bool
	removed string
}

func (m *mockRunner) Jobs() []scheduler.JobInfo {
	return []scheduler.JobInfo{{Name: scheduler.JobMorningSummary, Kind: scheduler.KindDaily, Schedule: "08:00", Runs: 1, Paused: m.paused}}
}

func (m *mockRunner) Pause(name string) error {
	if m.err == nil {
		m.paused = true
	}
	return m.err
}

func (m *mockRunner) Resume(name string) error {
	if m.err == nil {
		m.paused = false
	}
	return m.err
}

func (m *mockRunner) Remove(name string) error {
	if m.err == nil {
		m.removed = name
	}
	return m.err
}

func (m *mockRunner) RunNow(ctx context.Context, name string) error {
	m.ran = name
	return m.err
}

func serve(r *mockRunner, method, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	schedulerhttp.RegisterRoutes(e.Group("/api/v1"), schedulerhttp.New(log.NewNop(), r))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestListJobs(t *testing.T) {
	w := serve(&mockRunner{}, http.MethodGet, "/api/v1/scheduler/jobs")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"schedule":"08:00"`) {
		t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestRunJob(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"unknown", scheduler.ErrJobNotFound, http.StatusNotFound},
		{"busy", scheduler.ErrJobRunning, http.StatusConflict},
		{"failed", errors.New("smtp down"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRunner{err: tt.err}
			w := serve(r, http.MethodPost, "/api/v1/scheduler/jobs/morning_summary/run")
			if w.Code != tt.want {
				t.Errorf("expected %d but got %d", tt.want, w.Code)
			}
			if r.ran != scheduler.JobMorningSummary {
				t.Errorf("expected morning_summary to run, got %q", r.ran)
			}
		})
	}
}

func TestPauseResumeJob(t *testing.T) {
	r := &mockRunner{}

	w := serve(r, http.MethodPost, "/api/v1/scheduler/jobs/morning_summary/pause")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"paused":true`) {
		t.Fatalf("unexpected pause response %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodPost, "/api/v1/scheduler/jobs/morning_summary/resume")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"paused":false`) {
		t.Errorf("unexpected resume response %d %s", w.Code, w.Body.String())
	}

	w = serve(&mockRunner{err: scheduler.ErrJobNotFound}, http.MethodPost, "/api/v1/scheduler/jobs/nope/pause")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected %d but got %d", http.StatusNotFound, w.Code)
	}
}

func TestRemoveJob(t *testing.T) {
	r := &mockRunner{}
	w := serve(r, http.MethodDelete, "/api/v1/scheduler/jobs/email_check")
	if w.Code != http.StatusOK || r.removed != scheduler.JobEmailCheck {
		t.Errorf("expected email_check removed, got %d %q", w.Code, r.removed)
	}

	w = serve(&mockRunner{err: scheduler.ErrJobNotFound}, http.MethodDelete, "/api/v1/scheduler/jobs/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected %d but got %d", http.StatusNotFound, w.Code)
	}
}
