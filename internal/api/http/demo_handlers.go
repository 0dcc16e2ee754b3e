package http

import (
	"errors"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Chain demonstrates nested spans across three simulated steps.
func (h *Handlers) Chain(c *gin.Context) {
	parent, ctx := h.tracer.StartSpan(c.Request.Context(), "chain-handler")
	defer func() {
		parent.Finish()
		h.tracer.Submit(parent)
	}()
	parent.SetTag("chain.steps", "3")

	steps := make([]string, 0, 3)

	span, ctx := h.tracer.StartSpan(ctx, "step-1-database")
	span.SetTag("db.system", "postgresql")
	span.SetTag("db.operation", "SELECT")
	sleepRandom(10*time.Millisecond, 50*time.Millisecond)
	span.Finish()
	h.tracer.Submit(span)
	steps = append(steps, "db_query")

	span, ctx = h.tracer.StartSpan(ctx, "step-2-cache")
	span.SetTag("cache.system", "redis")
	span.SetTag("cache.hit", strconv.FormatBool(rand.Intn(2) == 0))
	sleepRandom(5*time.Millisecond, 20*time.Millisecond)
	span.Finish()
	h.tracer.Submit(span)
	steps = append(steps, "cache_check")

	span, _ = h.tracer.StartSpan(ctx, "step-3-external-api")
	span.SetTag("http.method", "GET")
	span.SetTag("http.url", "https://api.example.com/data")
	sleepRandom(20*time.Millisecond, 100*time.Millisecond)
	span.Finish()
	h.tracer.Submit(span)
	steps = append(steps, "api_call")

	c.JSON(http.StatusOK, gin.H{
		"status":   "chain complete",
		"steps":    steps,
		"trace_id": traceID(c),
	})
}

// SimulateError records an error on the span and returns 500.
func (h *Handlers) SimulateError(c *gin.Context) {
	span, _ := h.tracer.StartSpan(c.Request.Context(), "error-handler")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	err := errors.New("Simulated error for tracing demo")
	span.SetTag("error.simulated", "true")
	span.SetError(err)
	h.log(c).Error("caught simulated error", zap.Error(err))

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":   "error",
		"message":  err.Error(),
		"trace_id": traceID(c),
	})
}

// Slow sleeps for a random 0.5-2.0s to exercise latency analysis.
func (h *Handlers) Slow(c *gin.Context) {
	span, _ := h.tracer.StartSpan(c.Request.Context(), "slow-handler")
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	delay := 0.5 + rand.Float64()*1.5
	span.SetTag("delay.seconds", strconv.FormatFloat(delay, 'f', 2, 64))
	h.log(c).Info("starting slow operation", zap.Float64("delay_seconds", delay))

	time.Sleep(time.Duration(delay * float64(time.Second)))

	c.JSON(http.StatusOK, gin.H{
		"status":        "complete",
		"delay_seconds": math.Round(delay*100) / 100,
		"trace_id":      traceID(c),
	})
}

func sleepRandom(min, max time.Duration) {
	time.Sleep(min + time.Duration(rand.Int63n(int64(max-min))))
}
