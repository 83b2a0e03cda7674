package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/domain"
)

func serveCheck(t *testing.T, prober *Prober) (*httptest.ResponseRecorder, domain.HealthReport) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewHandler(prober).Check(c); err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	var report domain.HealthReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	return rec, report
}

func TestHandler_HealthyIs200(t *testing.T) {
	p := NewProber("auth-service", time.Second, nil)

	rec, report := serveCheck(t, p)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if report.Status != domain.StatusHealthy {
		t.Fatalf("expected healthy body, got %q", report.Status)
	}
}

func TestHandler_UnhealthyIs503(t *testing.T) {
	p := NewProber("auth-service", time.Second, nil).
		WithStorage("mongodb", func(ctx context.Context) error {
			return errors.New("down")
		})

	rec, report := serveCheck(t, p)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if report.Status != domain.StatusUnhealthy {
		t.Fatalf("expected unhealthy body, got %q", report.Status)
	}
	if report.Dependencies["mongodb"].Error != "down" {
		t.Fatalf("health body must expose the raw probe error")
	}
}

// auth is the root of the dependency chain: while it is down, every
// service that declares it must report 503 with an auth-service entry.
func TestHandler_CascadeWhenAuthDown(t *testing.T) {
	deadAuth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadAuth.Close()

	for _, svc := range []string{"user-service", "post-service"} {
		p := NewProber(svc, time.Second, []Dependency{
			{Name: "auth-service", BaseURL: deadAuth.URL},
		})

		rec, report := serveCheck(t, p)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s: expected 503, got %d", svc, rec.Code)
		}
		dep, ok := report.Dependencies["auth-service"]
		if !ok || dep.Status != domain.StatusUnhealthy {
			t.Fatalf("%s: auth-service must appear unhealthy, got %+v", svc, report.Dependencies)
		}
	}
}
