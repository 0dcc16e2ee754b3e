package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var hexTraceID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestNewTraceID(t *testing.T) {
	seen := make(map[TraceID]bool)
	for i := 0; i < 100; i++ {
		id := NewTraceID()
		assert.Regexp(t, hexTraceID, string(id))
		assert.False(t, seen[id], "trace ids must be unique")
		seen[id] = true
	}
}

func TestStartSpanReusesContextTraceID(t *testing.T) {
	tracer := New("test", zap.NewNop())

	ctx := WithTraceID(context.Background(), TraceID("0af7651916cd43dd8448eb211c80319c"))
	span, ctx := tracer.StartSpan(ctx, "outer")

	assert.Equal(t, TraceID("0af7651916cd43dd8448eb211c80319c"), span.TraceID)

	child, _ := tracer.StartSpan(ctx, "inner")
	assert.Equal(t, span.TraceID, child.TraceID)
	assert.Equal(t, span.SpanID, child.ParentID)
}

func TestHTTPMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer := New("test", zap.NewNop())

	router := gin.New()
	router.Use(HTTPMiddleware(tracer))
	router.GET("/ping", func(c *gin.Context) {
		traceID := GetTraceID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"trace_id": string(traceID)})
	})

	t.Run("generates trace id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Regexp(t, hexTraceID, w.Header().Get("X-Trace-ID"))
	})

	t.Run("honors incoming trace id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Trace-ID", "0af7651916cd43dd8448eb211c80319c")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "0af7651916cd43dd8448eb211c80319c", w.Header().Get("X-Trace-ID"))
	})
}
