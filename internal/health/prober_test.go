package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/microblog/platform/internal/core/domain"
)

func healthyServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected probe path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failingServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProbe_NoDependencies(t *testing.T) {
	p := NewProber("auth-service", time.Second, nil)

	report := p.Probe(context.Background())
	if report.Status != domain.StatusHealthy {
		t.Fatalf("zero dependencies must be healthy, got %q", report.Status)
	}
	if report.Service != "auth-service" {
		t.Fatalf("unexpected service name %q", report.Service)
	}
	if len(report.Dependencies) != 0 {
		t.Fatalf("expected empty dependency map, got %v", report.Dependencies)
	}
}

func TestProbe_AllHealthy(t *testing.T) {
	a := healthyServer(t)
	b := healthyServer(t)

	p := NewProber("comment-service", time.Second, []Dependency{
		{Name: "user-service", BaseURL: a.URL},
		{Name: "post-service", BaseURL: b.URL},
	})

	report := p.Probe(context.Background())
	if report.Status != domain.StatusHealthy {
		t.Fatalf("expected healthy, got %q", report.Status)
	}
	for name, dep := range report.Dependencies {
		if dep.Status != domain.StatusHealthy {
			t.Fatalf("dependency %s unexpectedly unhealthy: %+v", name, dep)
		}
		if dep.ResponseTimeMs == nil {
			t.Fatalf("dependency %s missing response time", name)
		}
		if dep.Error != "" {
			t.Fatalf("dependency %s carries error %q on success", name, dep.Error)
		}
	}
}

// Overall status must be unhealthy iff at least one probe outcome is
// unhealthy, for every combination of outcomes.
func TestProbe_AggregationORLaw(t *testing.T) {
	healthy := healthyServer(t)
	broken := failingServer(t, http.StatusInternalServerError)

	for mask := 0; mask < 8; mask++ {
		deps := make([]Dependency, 3)
		anyBroken := false
		for i := 0; i < 3; i++ {
			base := healthy.URL
			if mask&(1<<i) != 0 {
				base = broken.URL
				anyBroken = true
			}
			deps[i] = Dependency{Name: depName(i), BaseURL: base}
		}

		report := NewProber("post-service", time.Second, deps).Probe(context.Background())

		want := domain.StatusHealthy
		if anyBroken {
			want = domain.StatusUnhealthy
		}
		if report.Status != want {
			t.Fatalf("mask %03b: expected %q, got %q", mask, want, report.Status)
		}
		if len(report.Dependencies) != 3 {
			t.Fatalf("mask %03b: expected 3 entries, got %d", mask, len(report.Dependencies))
		}
	}
}

func depName(i int) string {
	return []string{"auth-service", "user-service", "post-service"}[i]
}

func TestProbe_HTTPErrorCode(t *testing.T) {
	broken := failingServer(t, http.StatusServiceUnavailable)

	p := NewProber("user-service", time.Second, []Dependency{
		{Name: "auth-service", BaseURL: broken.URL},
	})

	report := p.Probe(context.Background())
	dep := report.Dependencies["auth-service"]
	if dep.Status != domain.StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %q", dep.Status)
	}
	if dep.Error != "HTTP 503" {
		t.Fatalf("expected error \"HTTP 503\", got %q", dep.Error)
	}
	if dep.ResponseTimeMs == nil {
		t.Fatalf("response time must be captured on failure too")
	}
}

func TestProbe_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := NewProber("user-service", time.Second, []Dependency{
		{Name: "auth-service", BaseURL: srv.URL},
	})

	report := p.Probe(context.Background())
	dep := report.Dependencies["auth-service"]
	if dep.Status != domain.StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %q", dep.Status)
	}
	if dep.Error == "" {
		t.Fatalf("transport failure must carry the underlying error text")
	}
}

// A hanging dependency must be reported unhealthy within the probe
// timeout, and concurrent probes must cost ~max not sum of latencies.
func TestProbe_TimeoutIsolationAndParallelism(t *testing.T) {
	hang := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	t.Cleanup(hang.Close)

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(slow.Close)

	timeout := 300 * time.Millisecond
	p := NewProber("comment-service", timeout, []Dependency{
		{Name: "user-service", BaseURL: hang.URL},
		{Name: "post-service", BaseURL: slow.URL},
	})

	start := time.Now()
	report := p.Probe(context.Background())
	elapsed := time.Since(start)

	// Sequential probing would cost timeout + 100ms; parallel probing is
	// bounded by the max probe latency plus slack.
	if elapsed > timeout+200*time.Millisecond {
		t.Fatalf("probe took %v, expected ~max(latencies) bounded by timeout %v", elapsed, timeout)
	}

	if report.Status != domain.StatusUnhealthy {
		t.Fatalf("expected unhealthy overall, got %q", report.Status)
	}
	if report.Dependencies["post-service"].Status != domain.StatusHealthy {
		t.Fatalf("slow-but-responsive dependency must stay healthy")
	}
	hung := report.Dependencies["user-service"]
	if hung.Status != domain.StatusUnhealthy || hung.Error == "" {
		t.Fatalf("hanging dependency must time out with an error, got %+v", hung)
	}
}

func TestProbe_StorageFailureIsCaptured(t *testing.T) {
	p := NewProber("auth-service", time.Second, nil).
		WithStorage("mongodb", func(ctx context.Context) error {
			return errors.New("connection reset")
		})

	report := p.Probe(context.Background())
	if report.Status != domain.StatusUnhealthy {
		t.Fatalf("storage failure must make the service unhealthy")
	}
	dep := report.Dependencies["mongodb"]
	if dep.Status != domain.StatusUnhealthy || !strings.Contains(dep.Error, "connection reset") {
		t.Fatalf("storage entry must carry the probe error, got %+v", dep)
	}
}

func TestProbe_StorageHealthy(t *testing.T) {
	p := NewProber("auth-service", time.Second, nil).
		WithStorage("mongodb", func(ctx context.Context) error { return nil })

	report := p.Probe(context.Background())
	if report.Status != domain.StatusHealthy {
		t.Fatalf("expected healthy, got %q", report.Status)
	}
	if report.Dependencies["mongodb"].ResponseTimeMs == nil {
		t.Fatalf("storage probe must capture response time")
	}
}
