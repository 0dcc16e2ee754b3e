package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stuartshay/otel-demo/internal/store"
)

const maxLocationLimit = 100

// DBStatus checks database connectivity and reports server info.
func (h *Handlers) DBStatus(c *gin.Context) {
	span, ctx := h.tracer.StartSpan(c.Request.Context(), "db-status")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	if h.locations == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, codeDBNotConfigured,
			"Database credentials are not configured")
		return
	}

	start := time.Now()
	version, err := h.locations.HealthCheck(ctx)
	h.recordDBQuery("health_check", err, start)
	if err != nil {
		span.SetError(err)
		h.log(c).Error("database connection failed", zap.Error(err))
		h.errorResponse(c, http.StatusInternalServerError, codeInternalError,
			"Database connection failed. Please try again later.")
		return
	}

	span.SetTag("db.system", "postgresql")
	span.SetTag("db.connected", "true")

	c.JSON(http.StatusOK, gin.H{
		"status":         "connected",
		"database":       h.cfg.Database.Name,
		"host":           h.cfg.Database.Host,
		"port":           h.cfg.Database.Port,
		"server_version": version,
		"trace_id":       traceID(c),
	})
}

// DBLocations queries the owntracks locations table with pagination,
// sorting, and an optional device filter.
func (h *Handlers) DBLocations(c *gin.Context) {
	span, ctx := h.tracer.StartSpan(c.Request.Context(), "db-locations")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	if h.locations == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, codeDBNotConfigured,
			"Database credentials are not configured")
		return
	}

	limit, errLimit := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, errOffset := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if errLimit != nil || errOffset != nil || limit < 0 || offset < 0 {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError,
			"Invalid limit or offset parameter; expected non-negative integers.")
		return
	}
	if limit > maxLocationLimit {
		limit = maxLocationLimit
	}

	sort := c.DefaultQuery("sort", "created_at")
	order := strings.ToLower(c.DefaultQuery("order", "desc"))
	if order != "asc" {
		order = "desc"
	}
	deviceID := c.Query("device_id")

	span.SetTag("db.limit", strconv.Itoa(limit))
	span.SetTag("db.offset", strconv.Itoa(offset))
	span.SetTag("db.sort", sort)
	span.SetTag("db.order", order)
	if deviceID != "" {
		span.SetTag("db.device_id", deviceID)
	}

	start := time.Now()
	locations, err := h.locations.Locations(ctx, store.LocationQuery{
		Limit:    limit,
		Offset:   offset,
		Sort:     sort,
		Order:    order,
		DeviceID: deviceID,
	})
	h.recordDBQuery("locations", err, start)
	if err != nil {
		span.SetError(err)
		h.log(c).Error("database query failed", zap.Error(err))
		h.errorResponse(c, http.StatusInternalServerError, codeInternalError,
			"Internal server error while querying locations.")
		return
	}

	if locations == nil {
		locations = []store.Location{}
	}
	span.SetTag("db.result_count", strconv.Itoa(len(locations)))
	h.log(c).Info("retrieved location records", zap.Int("count", len(locations)))

	c.JSON(http.StatusOK, gin.H{
		"count":     len(locations),
		"limit":     limit,
		"offset":    offset,
		"sort":      sort,
		"order":     order,
		"locations": locations,
		"trace_id":  traceID(c),
	})
}

func (h *Handlers) recordDBQuery(operation string, err error, start time.Time) {
	if h.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	h.metrics.RecordDBQuery(operation, status, time.Since(start))
}
