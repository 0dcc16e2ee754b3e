package http

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stuartshay/otel-demo/internal/grpc/distance"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var jobStatuses = []string{"queued", "processing", "completed", "failed"}

func validStatus(status string) bool {
	for _, s := range jobStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// validateDate checks the YYYY-MM-DD format; when rejectFuture is set it
// also rejects dates after today (date-only comparison).
func validateDate(date string, rejectFuture bool) (code string, ok bool) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "Invalid date format. Expected YYYY-MM-DD", false
	}
	if rejectFuture && date > time.Now().Format("2006-01-02") {
		return "Date cannot be in the future", false
	}
	return "", true
}

// Calculate starts a distance calculation job.
func (h *Handlers) Calculate(c *gin.Context) {
	span, ctx := h.tracer.StartSpan(c.Request.Context(), "calculate-distance-handler")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	var req struct {
		Date     string `json:"date"`
		DeviceID string `json:"device_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError, "Request must be JSON")
		return
	}

	if req.Date == "" {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError, "Missing required field: date")
		return
	}
	if msg, ok := validateDate(req.Date, true); !ok {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError, msg)
		return
	}
	if req.DeviceID != "" && !deviceIDPattern.MatchString(req.DeviceID) {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError,
			"device_id must be alphanumeric with underscores")
		return
	}

	span.SetTag("distance.date", req.Date)
	span.SetTag("distance.device_id", req.DeviceID)

	resp, err := h.jobs.Submit(ctx, req.Date, req.DeviceID)
	if err != nil {
		span.SetError(err)
		h.distanceError(c, err, false)
		return
	}

	span.SetTag("distance.job_id", resp.JobId)
	span.SetTag("distance.job_status", resp.Status)
	h.log(c).Info("started distance calculation job",
		zap.String("job_id", resp.JobId),
		zap.String("date", req.Date),
		zap.String("device_id", req.DeviceID),
	)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id":     resp.JobId,
		"status":     resp.Status,
		"queued_at":  formatTimestamp(resp.QueuedAt),
		"status_url": "/api/distance/jobs/" + resp.JobId,
		"trace_id":   traceID(c),
	})
}

// GetJobStatus returns the current snapshot of a job.
func (h *Handlers) GetJobStatus(c *gin.Context) {
	span, ctx := h.tracer.StartSpan(c.Request.Context(), "get-job-status-handler")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	jobID := c.Param("job_id")
	span.SetTag("distance.job_id", jobID)

	resp, err := h.jobs.GetStatus(ctx, jobID)
	if err != nil {
		span.SetError(err)
		h.distanceError(c, err, true)
		return
	}

	span.SetTag("distance.job_status", resp.Status)
	h.log(c).Info("retrieved job status",
		zap.String("job_id", jobID),
		zap.String("status", resp.Status),
	)

	c.JSON(http.StatusOK, translateJobStatus(resp, traceID(c)))
}

// ListJobs returns a filtered, paginated page of jobs.
func (h *Handlers) ListJobs(c *gin.Context) {
	span, ctx := h.tracer.StartSpan(c.Request.Context(), "list-jobs-handler")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	status := c.Query("status")
	date := c.Query("date")
	deviceID := c.Query("device_id")

	limit, errLimit := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	offset, errOffset := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if errLimit != nil || errOffset != nil {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError,
			"limit and offset must be integers")
		return
	}
	if limit < 1 || limit > maxListLimit {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError,
			"limit must be between 1 and 500")
		return
	}
	if offset < 0 {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError,
			"offset must be non-negative")
		return
	}
	if status != "" && !validStatus(status) {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError,
			"status must be one of: queued, processing, completed, failed")
		return
	}
	if date != "" {
		if msg, ok := validateDate(date, false); !ok {
			h.errorResponse(c, http.StatusBadRequest, codeValidationError, msg)
			return
		}
	}

	if status == "" {
		span.SetTag("distance.filter.status", "all")
	} else {
		span.SetTag("distance.filter.status", status)
	}
	span.SetTag("distance.filter.limit", strconv.Itoa(limit))
	span.SetTag("distance.filter.offset", strconv.Itoa(offset))

	resp, err := h.jobs.ListJobs(ctx, distance.ListParams{
		Status:   status,
		Date:     date,
		DeviceID: deviceID,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		span.SetError(err)
		h.distanceError(c, err, false)
		return
	}

	jobs := make([]gin.H, 0, len(resp.Jobs))
	for _, job := range resp.Jobs {
		jobs = append(jobs, translateJobSummary(job))
	}

	// Pagination continuation: next_offset only while more rows remain.
	var nextOffset any
	if offset+limit < int(resp.TotalCount) {
		nextOffset = offset + limit
	}

	span.SetTag("distance.result_count", strconv.Itoa(len(jobs)))
	span.SetTag("distance.total_count", fmt.Sprintf("%d", resp.TotalCount))
	h.log(c).Info("listed jobs",
		zap.Int("count", len(jobs)),
		zap.Int32("total", resp.TotalCount),
		zap.Int("offset", offset),
	)

	c.JSON(http.StatusOK, gin.H{
		"jobs":        jobs,
		"total_count": resp.TotalCount,
		"limit":       limit,
		"offset":      offset,
		"next_offset": nextOffset,
		"trace_id":    traceID(c),
	})
}

// distanceError maps a worker client error onto an HTTP response.
// notFound selects whether validation-class errors render as 404 (status
// lookups for unknown ids) or 400 (rejected submissions).
func (h *Handlers) distanceError(c *gin.Context, err error, notFound bool) {
	de, ok := distance.AsError(err)
	if !ok {
		h.log(c).Error("distance service error", zap.Error(err))
		h.errorResponse(c, http.StatusInternalServerError, codeInternalError, err.Error())
		return
	}

	switch de.Kind {
	case distance.KindUnavailable:
		h.log(c).Error("distance service unavailable", zap.Error(err))
		h.errorResponse(c, http.StatusServiceUnavailable, codeServiceUnavailable, de.Message)
	case distance.KindValidation:
		h.log(c).Warn("distance request rejected", zap.Error(err))
		if notFound {
			h.errorResponse(c, http.StatusNotFound, codeNotFound, de.Message)
		} else {
			h.errorResponse(c, http.StatusBadRequest, codeValidationError, de.Message)
		}
	default:
		h.log(c).Error("distance service error", zap.Error(err))
		h.errorResponse(c, http.StatusInternalServerError, codeInternalError, de.Message)
	}
}
