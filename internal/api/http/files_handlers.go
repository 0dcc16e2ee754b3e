package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stuartshay/otel-demo/internal/storage"
)

// filePath extracts the storage-relative path from the wildcard route.
func filePath(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("path"), "/")
}

// GetFiles lists a directory or reads a file, depending on the path.
func (h *Handlers) GetFiles(c *gin.Context) {
	span, _ := h.tracer.StartSpan(c.Request.Context(), "files-get")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	relpath := filePath(c)
	display := relpath
	if display == "" {
		display = "/"
	}
	span.SetTag("file.path", display)

	if relpath == "" || h.files.IsDirectory(relpath) {
		span.SetTag("file.type", "directory")
		items, err := h.files.List(relpath)
		if err != nil {
			span.SetError(err)
			h.storageError(c, err, relpath)
			return
		}
		span.SetTag("file.item_count", strconv.Itoa(len(items)))
		c.JSON(http.StatusOK, gin.H{
			"path":     display,
			"type":     "directory",
			"items":    items,
			"trace_id": traceID(c),
		})
		return
	}

	span.SetTag("file.type", "file")
	content, size, err := h.files.Read(relpath)
	if err != nil {
		span.SetError(err)
		h.storageError(c, err, relpath)
		return
	}
	span.SetTag("file.size", strconv.Itoa(size))

	c.JSON(http.StatusOK, gin.H{
		"path":     relpath,
		"type":     "file",
		"content":  content,
		"size":     size,
		"trace_id": traceID(c),
	})
}

// WriteFile creates or updates a file. Content comes from a JSON body's
// "content" field or, for any other content type, the raw body.
func (h *Handlers) WriteFile(c *gin.Context) {
	span, _ := h.tracer.StartSpan(c.Request.Context(), "files-write")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	relpath := filePath(c)
	span.SetTag("file.path", relpath)

	var content string
	if strings.Contains(c.ContentType(), "application/json") {
		var body struct {
			Content string `json:"content"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			h.errorResponse(c, http.StatusBadRequest, codeValidationError, "Invalid JSON body")
			return
		}
		content = body.Content
	} else {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, codeValidationError, "Failed to read request body")
			return
		}
		content = string(raw)
	}

	res, err := h.files.Write(relpath, content)
	if err != nil {
		span.SetError(err)
		h.storageError(c, err, relpath)
		return
	}

	span.SetTag("file.size", strconv.Itoa(res.Size))
	span.SetTag("file.created", strconv.FormatBool(res.Status == "created"))
	h.log(c).Info("file written",
		zap.String("path", relpath),
		zap.String("status", res.Status),
		zap.Int("size", res.Size),
	)

	status := http.StatusOK
	if res.Status == "created" {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"status":   res.Status,
		"path":     relpath,
		"size":     res.Size,
		"trace_id": traceID(c),
	})
}

// DeleteFile removes a file or empty directory.
func (h *Handlers) DeleteFile(c *gin.Context) {
	span, _ := h.tracer.StartSpan(c.Request.Context(), "files-delete")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	relpath := filePath(c)
	span.SetTag("file.path", relpath)

	kind, err := h.files.Delete(relpath)
	if err != nil {
		span.SetError(err)
		h.storageError(c, err, relpath)
		return
	}
	span.SetTag("file.type", kind)
	h.log(c).Info("deleted", zap.String("path", relpath), zap.String("type", kind))

	c.JSON(http.StatusOK, gin.H{
		"status":   "deleted",
		"path":     relpath,
		"type":     kind,
		"trace_id": traceID(c),
	})
}

// MakeDirectory creates a directory from a JSON {"path"} body.
func (h *Handlers) MakeDirectory(c *gin.Context) {
	span, _ := h.tracer.StartSpan(c.Request.Context(), "files-mkdir")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	var body struct {
		Path string `json:"path"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError, "JSON body required")
		return
	}
	if body.Path == "" {
		h.errorResponse(c, http.StatusBadRequest, codeValidationError, "Path is required")
		return
	}
	span.SetTag("file.path", body.Path)

	status, err := h.files.Mkdir(body.Path)
	if err != nil {
		span.SetError(err)
		h.storageError(c, err, body.Path)
		return
	}

	code := http.StatusOK
	if status == "created" {
		code = http.StatusCreated
	}
	c.JSON(code, gin.H{
		"status":   status,
		"path":     body.Path,
		"type":     "directory",
		"trace_id": traceID(c),
	})
}

// storageError maps storage sentinel errors onto HTTP responses.
func (h *Handlers) storageError(c *gin.Context, err error, relpath string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, codeNotFound, "Path not found: "+relpath)
	case errors.Is(err, storage.ErrNotEmpty):
		h.errorResponse(c, http.StatusBadRequest, codeValidationError, "Directory not empty: "+relpath)
	case errors.Is(err, storage.ErrInvalidPath):
		h.errorResponse(c, http.StatusBadRequest, codeValidationError, "Invalid path: "+relpath)
	default:
		h.log(c).Error("storage operation failed", zap.String("path", relpath), zap.Error(err))
		h.errorResponse(c, http.StatusInternalServerError, codeInternalError, "Storage operation failed")
	}
}
