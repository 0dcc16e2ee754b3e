// Package tracing provides in-process request tracing with trace ids
// surfaced in every API response.
//
// Trace ids are opaque 32-hex-digit identifiers, compatible with W3C
// trace-context formatting. Incoming X-Trace-ID headers are honored so
// traces can span callers; otherwise a new id is generated per request.
//
// Spans are collected on a buffered channel and logged through zap with
// their duration, tags, and error state.
//
// Example Usage:
//
//	tracer := tracing.New("otel-demo", logger.Logger)
//	router.Use(tracing.HTTPMiddleware(tracer))
//
//	span, ctx := tracer.StartSpan(ctx, "grpc-calculate-distance")
//	span.SetTag("distance.date", date)
//	defer func() { span.Finish(); tracer.Submit(span) }()
package tracing
