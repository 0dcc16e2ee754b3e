package http

import (
	"path"

	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/stuartshay/otel-demo/proto/distance"
)

const downloadRoutePrefix = "/api/distance/download/"

// formatTimestamp renders a protobuf timestamp as ISO-8601 UTC with a
// trailing "Z".
func formatTimestamp(ts *timestamppb.Timestamp) string {
	return ts.AsTime().UTC().Format("2006-01-02T15:04:05.999999") + "Z"
}

// translateJobStatus maps a job snapshot into the client-facing shape.
// Lifecycle-dependent fields appear only when the snapshot warrants them:
// started_at and completed_at when those timestamps are set, result only
// for completed jobs, error_message only for failed jobs with a message.
func translateJobStatus(resp *pb.GetJobStatusResponse, traceID string) gin.H {
	out := gin.H{
		"job_id":    resp.JobId,
		"status":    resp.Status,
		"queued_at": formatTimestamp(resp.QueuedAt),
		"trace_id":  traceID,
	}

	if resp.StartedAt.GetSeconds() > 0 {
		out["started_at"] = formatTimestamp(resp.StartedAt)
	}
	if resp.CompletedAt.GetSeconds() > 0 {
		out["completed_at"] = formatTimestamp(resp.CompletedAt)
	}

	if resp.Status == "completed" && resp.Result != nil {
		result := resp.Result
		out["result"] = gin.H{
			"csv_download_url":   downloadRoutePrefix + path.Base(result.CsvPath),
			"total_distance_km":  result.TotalDistanceKm,
			"total_locations":    result.TotalLocations,
			"max_distance_km":    result.MaxDistanceKm,
			"min_distance_km":    result.MinDistanceKm,
			"processing_time_ms": result.ProcessingTimeMs,
			"date":               result.Date,
			"device_id":          result.DeviceId,
		}
	}

	if resp.Status == "failed" && resp.ErrorMessage != "" {
		out["error_message"] = resp.ErrorMessage
	}

	return out
}

// translateJobSummary maps a list entry; completed_at appears only when
// set.
func translateJobSummary(job *pb.JobSummary) gin.H {
	out := gin.H{
		"job_id":    job.JobId,
		"status":    job.Status,
		"date":      job.Date,
		"device_id": job.DeviceId,
		"queued_at": formatTimestamp(job.QueuedAt),
	}
	if job.CompletedAt.GetSeconds() > 0 {
		out["completed_at"] = formatTimestamp(job.CompletedAt)
	}
	return out
}
