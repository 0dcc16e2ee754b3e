package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/stuartshay/otel-demo/internal/grpc/distance"
	pb "github.com/stuartshay/otel-demo/proto/distance"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCalculateSuccess(t *testing.T) {
	jobs := &fakeJobs{submitResp: &fakeResult[*pb.CalculateDistanceResponse]{
		value: &pb.CalculateDistanceResponse{
			JobId:    "b4eaed9f",
			Status:   "queued",
			QueuedAt: timestamppb.New(time.Date(2026, 1, 25, 15, 24, 54, 0, time.UTC)),
		},
	}}
	router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

	rec := postJSON(router, "/api/distance/calculate", `{"date":"2026-01-25","device_id":"phone_1"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "b4eaed9f", body["job_id"])
	assert.Equal(t, "queued", body["status"])
	assert.Equal(t, "2026-01-25T15:24:54Z", body["queued_at"])
	assert.Equal(t, "/api/distance/jobs/b4eaed9f", body["status_url"])
	assert.Regexp(t, hexTraceID, body["trace_id"])
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing body", "", "Request must be JSON"},
		{"missing date", `{"device_id":"phone_1"}`, "Missing required field: date"},
		{"malformed date", `{"date":"01-25-2026"}`, "Invalid date format. Expected YYYY-MM-DD"},
		{"impossible date", `{"date":"2026-13-45"}`, "Invalid date format. Expected YYYY-MM-DD"},
		{"future date", `{"date":"9999-01-01"}`, "Date cannot be in the future"},
		{"bad device id", `{"date":"2020-01-01","device_id":"bad-id!"}`, "device_id must be alphanumeric with underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &fakeJobs{submitResp: &fakeResult[*pb.CalculateDistanceResponse]{}}
			router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

			rec := postJSON(router, "/api/distance/calculate", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(t, body))
			envelope := body["error"].(map[string]any)
			assert.Equal(t, tt.message, envelope["message"])
			assert.Regexp(t, hexTraceID, body["trace_id"])
		})
	}
}

func TestCalculateEmptyDeviceIDAllowed(t *testing.T) {
	jobs := &fakeJobs{submitResp: &fakeResult[*pb.CalculateDistanceResponse]{
		value: &pb.CalculateDistanceResponse{
			JobId: "j1", Status: "queued", QueuedAt: timestamppb.Now(),
		},
	}}
	router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

	rec := postJSON(router, "/api/distance/calculate", `{"date":"2020-06-15"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestCalculateServiceUnavailable(t *testing.T) {
	jobs := &fakeJobs{submitResp: &fakeResult[*pb.CalculateDistanceResponse]{
		err: &distance.Error{Kind: distance.KindUnavailable, Message: "worker down"},
	}}
	router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

	rec := postJSON(router, "/api/distance/calculate", `{"date":"2020-06-15"}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", errorCode(t, decodeBody(t, rec)))
}

func TestGetJobStatus(t *testing.T) {
	t.Run("completed job", func(t *testing.T) {
		jobs := &fakeJobs{statusResp: &fakeResult[*pb.GetJobStatusResponse]{
			value: &pb.GetJobStatusResponse{
				JobId:       "j2",
				Status:      "completed",
				QueuedAt:    timestamppb.Now(),
				StartedAt:   timestamppb.Now(),
				CompletedAt: timestamppb.Now(),
				Result:      &pb.JobResult{CsvPath: "/out/distance_20200615.csv"},
			},
		}}
		router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

		rec := get(router, "/api/distance/jobs/j2")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body, "result")
		assert.NotContains(t, body, "error_message")
	})

	t.Run("unknown id", func(t *testing.T) {
		jobs := &fakeJobs{statusResp: &fakeResult[*pb.GetJobStatusResponse]{
			err: &distance.Error{Kind: distance.KindValidation, Message: "invalid request: job not found"},
		}}
		router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

		rec := get(router, "/api/distance/jobs/nope")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, decodeBody(t, rec)))
	})

	t.Run("worker unreachable", func(t *testing.T) {
		jobs := &fakeJobs{statusResp: &fakeResult[*pb.GetJobStatusResponse]{
			err: &distance.Error{Kind: distance.KindUnavailable, Message: "down"},
		}}
		router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

		rec := get(router, "/api/distance/jobs/j3")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "SERVICE_UNAVAILABLE", errorCode(t, decodeBody(t, rec)))
	})

	t.Run("internal error", func(t *testing.T) {
		jobs := &fakeJobs{statusResp: &fakeResult[*pb.GetJobStatusResponse]{
			err: &distance.Error{Kind: distance.KindInternal, Message: "grpc error (Internal): boom"},
		}}
		router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

		rec := get(router, "/api/distance/jobs/j4")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, decodeBody(t, rec)))
	})
}

func TestListJobsValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"non-integer limit", "?limit=abc", "limit and offset must be integers"},
		{"non-integer offset", "?offset=x", "limit and offset must be integers"},
		{"limit too large", "?limit=1000", "limit must be between 1 and 500"},
		{"limit zero", "?limit=0", "limit must be between 1 and 500"},
		{"negative offset", "?offset=-1", "offset must be non-negative"},
		{"unknown status", "?status=done", "status must be one of: queued, processing, completed, failed"},
		{"bad date", "?date=not-a-date", "Invalid date format. Expected YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &fakeJobs{listResp: &fakeResult[*pb.ListJobsResponse]{value: &pb.ListJobsResponse{}}}
			router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

			rec := get(router, "/api/distance/jobs"+tt.query)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(t, body))
			envelope := body["error"].(map[string]any)
			assert.Equal(t, tt.message, envelope["message"])
		})
	}
}

func TestListJobsDefaults(t *testing.T) {
	jobs := &fakeJobs{listResp: &fakeResult[*pb.ListJobsResponse]{value: &pb.ListJobsResponse{}}}
	router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

	rec := get(router, "/api/distance/jobs")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(50), jobs.lastList.Limit)
	assert.Equal(t, int32(0), jobs.lastList.Offset)
}

func TestListJobsPagination(t *testing.T) {
	tests := []struct {
		name       string
		total      int32
		limit      int
		offset     int
		wantNext   float64
		wantIsNull bool
	}{
		{"last page", 15, 10, 10, 0, true},
		{"middle page", 100, 10, 20, 30, false},
		{"exact boundary", 20, 10, 10, 0, true},
		{"first of many", 100, 50, 0, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &fakeJobs{listResp: &fakeResult[*pb.ListJobsResponse]{
				value: &pb.ListJobsResponse{TotalCount: tt.total},
			}}
			router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

			rec := get(router, fmt.Sprintf("/api/distance/jobs?limit=%d&offset=%d", tt.limit, tt.offset))

			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			require.Contains(t, body, "next_offset")
			if tt.wantIsNull {
				assert.Nil(t, body["next_offset"])
			} else {
				assert.Equal(t, tt.wantNext, body["next_offset"])
			}
		})
	}
}

func TestListJobsResponseShape(t *testing.T) {
	jobs := &fakeJobs{listResp: &fakeResult[*pb.ListJobsResponse]{
		value: &pb.ListJobsResponse{
			Jobs: []*pb.JobSummary{
				{JobId: "a", Status: "completed", Date: "2020-06-15", DeviceId: "d1",
					QueuedAt: timestamppb.Now(), CompletedAt: timestamppb.Now()},
				{JobId: "b", Status: "queued", Date: "2020-06-16", DeviceId: "d1",
					QueuedAt: timestamppb.Now()},
			},
			TotalCount: 2,
		},
	}}
	router := newTestRouter(newTestHandlers(t, nil, jobs, nil))

	rec := get(router, "/api/distance/jobs?status=completed&date=2020-06-15&device_id=d1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	list := body["jobs"].([]any)
	require.Len(t, list, 2)

	first := list[0].(map[string]any)
	assert.Contains(t, first, "completed_at")
	second := list[1].(map[string]any)
	assert.NotContains(t, second, "completed_at")

	assert.Equal(t, float64(2), body["total_count"])
	assert.Equal(t, "completed", jobs.lastList.Status)
	assert.Equal(t, "2020-06-15", jobs.lastList.Date)
	assert.Equal(t, "d1", jobs.lastList.DeviceID)
}
