// Package health implements the cascading health protocol: every service
// determines its own health by probing its local storage and the /health
// endpoint of each declared upstream, then reducing with OR-of-failures.
package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/microblog/platform/internal/api/metrics"
	"github.com/microblog/platform/internal/core/domain"
)

const defaultProbeTimeout = 2 * time.Second

// Dependency declares an upstream service probed via GET <BaseURL>/health.
type Dependency struct {
	Name    string
	BaseURL string
}

// StorageProbe checks the local store within the supplied context, e.g. a
// Mongo ping. A nil error means reachable.
type StorageProbe func(ctx context.Context) error

// Prober produces a fresh HealthReport on every call. It is stateless
// across calls and safe for concurrent use; results are never cached
// because a stale report is worse than the cost of re-probing.
type Prober struct {
	service     string
	timeout     time.Duration
	client      *http.Client
	deps        []Dependency
	storageName string
	storage     StorageProbe
}

// NewProber builds a Prober for service. timeout bounds every individual
// probe (storage and HTTP alike); <= 0 falls back to 2s.
func NewProber(service string, timeout time.Duration, deps []Dependency) *Prober {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Prober{
		service: service,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		deps:    deps,
	}
}

// WithStorage registers the local storage probe, reported under name in
// the dependency map alongside the remote upstreams.
func (p *Prober) WithStorage(name string, probe StorageProbe) *Prober {
	p.storageName = name
	p.storage = probe
	return p
}

// Probe runs the local storage probe and all dependency probes
// concurrently, waits for every one to finish or time out, and reduces:
// unhealthy iff any entry is unhealthy. N dependencies cost ~max of the
// individual latencies, never the sum.
func (p *Prober) Probe(ctx context.Context) domain.HealthReport {
	type slot struct {
		name   string
		health domain.DependencyHealth
	}

	n := len(p.deps)
	if p.storage != nil {
		n++
	}
	results := make([]slot, n)

	var wg sync.WaitGroup
	for i, dep := range p.deps {
		wg.Add(1)
		go func(i int, dep Dependency) {
			defer wg.Done()
			results[i] = slot{name: dep.Name, health: p.probeDependency(ctx, dep)}
		}(i, dep)
	}
	if p.storage != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[n-1] = slot{name: p.storageName, health: p.probeStorage(ctx)}
		}()
	}
	wg.Wait()

	report := domain.HealthReport{
		Service:      p.service,
		Status:       domain.StatusHealthy,
		Dependencies: make(map[string]domain.DependencyHealth, n),
	}
	for _, r := range results {
		report.Dependencies[r.name] = r.health
		if r.health.Status == domain.StatusUnhealthy {
			report.Status = domain.StatusUnhealthy
		}
	}
	return report
}

// probeDependency GETs the upstream's /health endpoint. 200 is healthy;
// any other status is unhealthy with error "HTTP <code>"; a transport
// failure (timeout, refused connection, DNS) is unhealthy with the
// underlying error text. Round-trip time is captured in all three cases.
func (p *Prober) probeDependency(ctx context.Context, dep Dependency) domain.DependencyHealth {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	observe := func(outcome string) *float64 {
		elapsed := time.Since(start)
		metrics.HealthProbeDuration.WithLabelValues(dep.Name, outcome).Observe(elapsed.Seconds())
		ms := float64(elapsed.Microseconds()) / 1000.0
		return &ms
	}

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, dep.BaseURL+"/health", nil)
	if err != nil {
		return domain.DependencyHealth{
			Status:         domain.StatusUnhealthy,
			ResponseTimeMs: observe("error"),
			Error:          err.Error(),
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.DependencyHealth{
			Status:         domain.StatusUnhealthy,
			ResponseTimeMs: observe("error"),
			Error:          err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.DependencyHealth{
			Status:         domain.StatusUnhealthy,
			ResponseTimeMs: observe("unhealthy"),
			Error:          fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return domain.DependencyHealth{
		Status:         domain.StatusHealthy,
		ResponseTimeMs: observe("healthy"),
	}
}

// probeStorage runs the local storage check under the same per-probe
// timeout. Failures are captured in the report, never propagated: the
// health endpoint always answers.
func (p *Prober) probeStorage(ctx context.Context) domain.DependencyHealth {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	err := p.storage(probeCtx)
	elapsed := time.Since(start)
	ms := float64(elapsed.Microseconds()) / 1000.0

	if err != nil {
		metrics.HealthProbeDuration.WithLabelValues(p.storageName, "error").Observe(elapsed.Seconds())
		return domain.DependencyHealth{
			Status:         domain.StatusUnhealthy,
			ResponseTimeMs: &ms,
			Error:          err.Error(),
		}
	}
	metrics.HealthProbeDuration.WithLabelValues(p.storageName, "healthy").Observe(elapsed.Seconds())
	return domain.DependencyHealth{
		Status:         domain.StatusHealthy,
		ResponseTimeMs: &ms,
	}
}
