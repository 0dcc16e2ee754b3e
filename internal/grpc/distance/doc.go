// Package distance provides the gRPC client for the distance calculation
// worker.
//
// This package wraps the generated protobuf client with lazy connection
// management, a closed error taxonomy, and Go-friendly call signatures.
//
// Operations:
//   - Submit: enqueue a distance calculation for a date
//   - GetStatus: fetch the current snapshot of a job
//   - ListJobs: filtered, paginated job listing
//   - HealthCheck: boolean liveness probe against the worker
//
// Errors from all operations are *Error values with a Kind of
// KindUnavailable, KindValidation, or KindInternal; callers branch on
// the kind with IsUnavailable and IsValidation rather than inspecting
// gRPC status codes.
//
// Example Usage:
//
//	client := distance.New("localhost:50051", 30*time.Second)
//	defer client.Close()
//	resp, err := client.Submit(ctx, "2025-01-15", "phone_1")
package distance
