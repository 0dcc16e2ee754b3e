// Package distance provides generated Protocol Buffer types and the gRPC
// client for the distance calculation worker.
//
// Generated from: proto/distance.proto
//
// This package contains:
//   - DistanceServiceClient: gRPC client for job operations
//   - CalculateDistance request/response types
//   - GetJobStatus request/response types (JobResult payload)
//   - ListJobs request/response types (JobSummary projection)
//
// Services:
//   - CalculateDistanceFromHome: Enqueue a calculation job
//   - GetJobStatus: Fetch a job snapshot
//   - ListJobs: Filtered, paginated job listing
//
// Usage:
//
//	This package is typically wrapped by internal/grpc/distance
//	for higher-level Go interfaces.
//
// Note: This is generated code. Do not edit manually.
// Regenerate with: make proto
package distance
