package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// validateDownloadFilename enforces the CSV result naming contract and
// blocks traversal attempts before any outbound request is made.
func validateDownloadFilename(filename string) (msg string, ok bool) {
	if !strings.HasPrefix(filename, "distance_") || !strings.HasSuffix(filename, ".csv") {
		return "Invalid filename format. Must start with 'distance_' and end with '.csv'", false
	}
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		return "Invalid filename: path traversal detected", false
	}
	return "", true
}

// workerDownloadURL builds the worker's plain-HTTP download URL from the
// gRPC endpoint host and the configured download port.
func (h *Handlers) workerDownloadURL(filename string) string {
	host := h.cfg.Distance.Endpoint
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	return fmt.Sprintf("http://%s:%d/download/%s", host, h.cfg.Distance.DownloadPort, filename)
}

// DownloadCSV streams a result file from the worker to the caller. The
// body is piped through without being buffered in memory.
func (h *Handlers) DownloadCSV(c *gin.Context) {
	span, ctx := h.tracer.StartSpan(c.Request.Context(), "download-csv-handler")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	filename := c.Param("filename")
	span.SetTag("distance.filename", filename)

	if msg, ok := validateDownloadFilename(filename); !ok {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError, msg)
		return
	}

	workerURL := h.workerDownloadURL(filename)
	span.SetTag("distance.worker_url", workerURL)
	h.log(c).Info("proxying csv download", zap.String("filename", filename), zap.String("url", workerURL))

	resp, err := h.download.R().SetContext(ctx).Get(workerURL)
	if err != nil {
		span.SetError(err)
		if isTimeout(err) {
			h.log(c).Error("csv download timed out", zap.String("filename", filename))
			h.recordDownload("timeout", 0)
			h.errorResponse(c, http.StatusGatewayTimeout, codeTimeout, "Download request timed out")
			return
		}
		h.log(c).Error("csv download failed", zap.String("filename", filename), zap.Error(err))
		h.recordDownload("error", 0)
		h.errorResponse(c, http.StatusInternalServerError, codeDownloadError,
			fmt.Sprintf("Failed to download file: %s", err))
		return
	}

	body := resp.RawBody()
	defer body.Close()

	switch status := resp.StatusCode(); {
	case status == http.StatusNotFound:
		h.log(c).Warn("csv file not found on worker", zap.String("filename", filename))
		h.recordDownload("not_found", 0)
		h.errorResponse(c, http.StatusNotFound, codeNotFound, fmt.Sprintf("File not found: %s", filename))
		return
	case status != http.StatusOK:
		span.SetStatus(status)
		h.log(c).Error("worker rejected csv download",
			zap.String("filename", filename),
			zap.Int("status", status),
		)
		h.recordDownload("failed", 0)
		h.errorResponse(c, status, codeDownloadFailed,
			fmt.Sprintf("Failed to download file from worker: HTTP %d", status))
		return
	}

	contentLength := resp.RawResponse.ContentLength
	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
	}
	c.DataFromReader(http.StatusOK, contentLength, "text/csv", body, headers)

	span.SetTag("distance.proxy_status", "success")
	h.recordDownload("success", contentLength)
	h.log(c).Info("proxied csv download", zap.String("filename", filename))
}

func (h *Handlers) recordDownload(status string, bytes int64) {
	if h.metrics != nil {
		h.metrics.RecordDownload(status, bytes)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
