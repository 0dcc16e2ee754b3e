package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers liveness probes without tracing overhead.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Ready answers readiness probes.
func (h *Handlers) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Info returns service identity and build metadata with a trace id for
// cross-system verification.
func (h *Handlers) Info(c *gin.Context) {
	span, _ := h.tracer.StartSpan(c.Request.Context(), "info-handler")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	span.SetTag("app.version", h.cfg.Service.Version)
	span.SetTag("app.build_number", h.cfg.Service.BuildNumber)

	c.JSON(http.StatusOK, gin.H{
		"service":      h.cfg.Service.Name,
		"version":      h.cfg.Service.Version,
		"build_number": h.cfg.Service.BuildNumber,
		"build_date":   h.cfg.Service.BuildDate,
		"message":      "Distance API backend",
		"trace_id":     traceID(c),
	})
}

// Observability returns the current service configuration and an
// endpoint directory.
func (h *Handlers) Observability(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service_name":      h.cfg.Service.Name,
		"service_namespace": h.cfg.Service.Namespace,
		"environment":       h.cfg.Service.Environment,
		"version":           h.cfg.Service.Version,
		"endpoints": gin.H{
			"/info":                         "Service info with trace ID",
			"/health":                       "Health check (no tracing)",
			"/ready":                        "Readiness check",
			"/chain":                        "Nested spans demo (3 steps)",
			"/error":                        "Error recording demo",
			"/slow":                         "Slow operation demo (0.5-2s)",
			"/metrics":                      "Prometheus metrics",
			"/observability":                "This endpoint",
			"/db/status":                    "Database connection status",
			"/db/locations":                 "Query owntracks locations",
			"/files":                        "List files in storage",
			"/files/<path>":                 "Read/write/delete files (GET/POST/PUT/DELETE)",
			"/api/distance/calculate":       "Start distance calculation job",
			"/api/distance/jobs":            "List distance calculation jobs",
			"/api/distance/jobs/<id>":       "Get job status",
			"/api/distance/download/<file>": "Download result CSV",
		},
		"trace_id": traceID(c),
	})
}
