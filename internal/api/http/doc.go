// Package http implements the REST façade.
//
// Handlers validate inbound requests, delegate to the distance worker
// client, the location store, or the storage service, and render JSON.
// Error responses share one envelope: {"error": {"code", "message"},
// "trace_id"}; every response carries the request's trace id.
package http
