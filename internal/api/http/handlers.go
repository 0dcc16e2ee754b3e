package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"

	"github.com/stuartshay/otel-demo/internal/grpc/distance"
	"github.com/stuartshay/otel-demo/internal/infrastructure/config"
	"github.com/stuartshay/otel-demo/internal/infrastructure/logging"
	"github.com/stuartshay/otel-demo/internal/infrastructure/monitoring"
	"github.com/stuartshay/otel-demo/internal/infrastructure/tracing"
	"github.com/stuartshay/otel-demo/internal/storage"
	"github.com/stuartshay/otel-demo/internal/store"
	pb "github.com/stuartshay/otel-demo/proto/distance"
)

// downloadTimeout bounds the CSV proxy request to the worker.
const downloadTimeout = 30 * time.Second

// JobService is the distance worker surface the handlers depend on.
// Satisfied by *distance.Client.
type JobService interface {
	Submit(ctx context.Context, date, deviceID string) (*pb.CalculateDistanceResponse, error)
	GetStatus(ctx context.Context, jobID string) (*pb.GetJobStatusResponse, error)
	ListJobs(ctx context.Context, params distance.ListParams) (*pb.ListJobsResponse, error)
	HealthCheck(ctx context.Context) bool
}

// LocationReader is the database surface the handlers depend on.
// Satisfied by *store.LocationStore.
type LocationReader interface {
	HealthCheck(ctx context.Context) (string, error)
	Locations(ctx context.Context, q store.LocationQuery) ([]store.Location, error)
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	cfg     *config.Config
	logger  *logging.Logger
	tracer  *tracing.Tracer
	metrics *monitoring.Metrics

	jobs      JobService
	locations LocationReader // nil when database credentials are absent
	files     *storage.Service

	download *resty.Client
}

// NewHandlers creates handlers with the given dependencies. locations may
// be nil; the database endpoints then answer 503 DB_NOT_CONFIGURED.
func NewHandlers(
	cfg *config.Config,
	logger *logging.Logger,
	tracer *tracing.Tracer,
	metrics *monitoring.Metrics,
	jobs JobService,
	locations LocationReader,
	files *storage.Service,
) *Handlers {
	return &Handlers{
		cfg:       cfg,
		logger:    logger,
		tracer:    tracer,
		metrics:   metrics,
		jobs:      jobs,
		locations: locations,
		files:     files,
		download: resty.New().
			SetTimeout(downloadTimeout).
			SetDoNotParseResponse(true),
	}
}

// log returns the logger stamped with the request's trace id so entries
// correlate with the trace surfaced in the response.
func (h *Handlers) log(c *gin.Context) *logging.Logger {
	return h.logger.WithTrace(string(tracing.GetTraceID(c.Request.Context())))
}
