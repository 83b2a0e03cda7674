package domain

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// DependencyHealth is the outcome of a single probe. ResponseTimeMs is
// captured on success and failure alike; Error carries the raw transport
// or storage error text — health responses are the one place internals
// are intentionally exposed for operability.
type DependencyHealth struct {
	Status         string   `json:"status"`
	ResponseTimeMs *float64 `json:"response_time_ms"`
	Error          string   `json:"error,omitempty"`
}

// HealthReport is produced fresh on every /health call and never cached.
// Status is unhealthy iff at least one dependency entry is unhealthy.
type HealthReport struct {
	Service      string                      `json:"service"`
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyHealth `json:"dependencies"`
}

// Healthy reports whether the aggregate status is healthy.
func (r HealthReport) Healthy() bool {
	return r.Status == StatusHealthy
}
