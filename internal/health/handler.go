package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves GET /health by running the prober and deriving the HTTP
// status from the aggregate: 200 when healthy, 503 otherwise.
type Handler struct {
	prober *Prober
}

func NewHandler(prober *Prober) *Handler {
	return &Handler{prober: prober}
}

// Check godoc
//
// @Summary      Service health with transitive dependency status
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.HealthReport
// @Failure      503  {object}  domain.HealthReport
// @Router       /health [get]
func (h *Handler) Check(c echo.Context) error {
	report := h.prober.Probe(c.Request().Context())

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, report)
}

// Register mounts the health endpoint on / and the versioned alias.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Check)
	e.GET("/api/v1/health", h.Check)
}
