package distance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/stuartshay/otel-demo/internal/infrastructure/monitoring"
	"github.com/stuartshay/otel-demo/internal/infrastructure/resilience"
	"github.com/stuartshay/otel-demo/internal/infrastructure/tracing"
	pb "github.com/stuartshay/otel-demo/proto/distance"
)

// healthCheckTimeout bounds the liveness probe independently of the
// configured call timeout.
const healthCheckTimeout = 5 * time.Second

// ListParams are the pass-through filters for ListJobs. The REST layer
// validates them; the client does not re-check.
type ListParams struct {
	Status   string
	Date     string
	DeviceID string
	Limit    int32
	Offset   int32
}

// Client owns the single long-lived channel to the distance worker.
//
// Construct one instance at process start and inject it wherever job
// operations are needed. The channel is established lazily on first use;
// concurrent first calls are guarded so exactly one channel is created.
// Close is idempotent and safe to call on a client that never connected.
type Client struct {
	endpoint string
	timeout  time.Duration

	tracer  *tracing.Tracer
	metrics *monitoring.Metrics
	breaker *resilience.Breaker

	// connect is overridable in tests to count channel creations.
	connect func() (pb.DistanceServiceClient, io.Closer, error)

	once    sync.Once
	stub    pb.DistanceServiceClient
	closer  io.Closer
	dialErr error

	mu     sync.Mutex
	closed bool
}

// New creates a client for the worker at endpoint. timeout bounds every
// RPC except the health probe.
func New(endpoint string, timeout time.Duration) *Client {
	c := &Client{
		endpoint: endpoint,
		timeout:  timeout,
	}
	c.connect = c.dial
	return c
}

// WithTracer attaches a tracer so every call is wrapped in a span.
func (c *Client) WithTracer(t *tracing.Tracer) *Client {
	c.tracer = t
	return c
}

// WithMetrics attaches a metrics collector for call/error counters.
func (c *Client) WithMetrics(m *monitoring.Metrics) *Client {
	c.metrics = m
	return c
}

// WithBreaker guards the worker RPCs with a circuit breaker. While the
// breaker is open, calls fail fast as unavailable without touching the
// transport. Only transport-level failures count against the breaker;
// validation rejections and unknown-id lookups do not.
func (c *Client) WithBreaker(b *resilience.Breaker) *Client {
	c.breaker = b
	return c
}

// invoke routes a call through the breaker when one is configured.
func (c *Client) invoke(call func() error) error {
	if c.breaker == nil {
		return call()
	}

	var callErr error
	err := c.breaker.Do(func() error {
		callErr = call()
		if callErr != nil && IsUnavailable(callErr) {
			return callErr
		}
		return nil
	})
	if errors.Is(err, resilience.ErrOpen) {
		return &Error{
			Kind:    KindUnavailable,
			Message: fmt.Sprintf("distance service unreachable at %s: circuit open", c.endpoint),
			cause:   err,
		}
	}
	return callErr
}

// dial establishes the gRPC channel with keepalive tuned for a
// long-lived multiplexed connection.
func (c *Client) dial() (pb.DistanceServiceClient, io.Closer, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                60 * time.Second,
			Timeout:             20 * time.Second,
			PermitWithoutStream: false,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(10*1024*1024),
			grpc.MaxCallSendMsgSize(10*1024*1024),
		),
	}

	conn, err := grpc.NewClient(c.endpoint, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial distance worker: %w", err)
	}

	return pb.NewDistanceServiceClient(conn), conn, nil
}

// ensure returns the shared stub, creating the channel exactly once even
// under concurrent first calls.
func (c *Client) ensure() (pb.DistanceServiceClient, error) {
	c.once.Do(func() {
		c.stub, c.closer, c.dialErr = c.connect()
	})
	if c.dialErr != nil {
		return nil, &Error{
			Kind:    KindUnavailable,
			Message: fmt.Sprintf("distance service unreachable at %s: %v", c.endpoint, c.dialErr),
			cause:   c.dialErr,
		}
	}
	return c.stub, nil
}

// Close releases the channel. Idempotent; safe when never connected.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.closer == nil {
		c.closed = true
		return nil
	}
	c.closed = true
	return c.closer.Close()
}

// Submit enqueues a distance calculation job. date must already be
// validated as YYYY-MM-DD and not in the future; deviceID may be empty
// (all devices).
func (c *Client) Submit(ctx context.Context, date, deviceID string) (*pb.CalculateDistanceResponse, error) {
	span, ctx := c.startSpan(ctx, "grpc-calculate-distance")
	if span != nil {
		span.SetTag("distance.date", date)
		span.SetTag("distance.device_id", deviceID)
		defer c.finishSpan(span)
	}

	stub, err := c.ensure()
	if err != nil {
		return nil, c.fail(span, "CalculateDistanceFromHome", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var resp *pb.CalculateDistanceResponse
	err = c.invoke(func() error {
		r, callErr := stub.CalculateDistanceFromHome(ctx, &pb.CalculateDistanceRequest{
			Date:     date,
			DeviceId: deviceID,
		})
		if callErr != nil {
			return translateError(c.endpoint, callErr)
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, c.fail(span, "CalculateDistanceFromHome", err)
	}

	c.record("CalculateDistanceFromHome", start)
	if span != nil {
		span.SetTag("distance.job_id", resp.JobId)
		span.SetTag("distance.status", resp.Status)
	}
	return resp, nil
}

// GetStatus fetches the current snapshot of a job. The snapshot is never
// cached; every call re-fetches.
func (c *Client) GetStatus(ctx context.Context, jobID string) (*pb.GetJobStatusResponse, error) {
	span, ctx := c.startSpan(ctx, "grpc-get-job-status")
	if span != nil {
		span.SetTag("distance.job_id", jobID)
		defer c.finishSpan(span)
	}

	stub, err := c.ensure()
	if err != nil {
		return nil, c.fail(span, "GetJobStatus", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var resp *pb.GetJobStatusResponse
	err = c.invoke(func() error {
		r, callErr := stub.GetJobStatus(ctx, &pb.GetJobStatusRequest{JobId: jobID})
		if callErr != nil {
			return translateError(c.endpoint, callErr)
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, c.fail(span, "GetJobStatus", err)
	}

	c.record("GetJobStatus", start)
	if span != nil {
		span.SetTag("distance.status", resp.Status)
	}
	return resp, nil
}

// ListJobs returns a filtered page of jobs. Params are passed through
// after REST-layer validation.
func (c *Client) ListJobs(ctx context.Context, params ListParams) (*pb.ListJobsResponse, error) {
	span, ctx := c.startSpan(ctx, "grpc-list-jobs")
	if span != nil {
		span.SetTag("distance.filter.status", params.Status)
		span.SetTag("distance.filter.limit", fmt.Sprintf("%d", params.Limit))
		span.SetTag("distance.filter.offset", fmt.Sprintf("%d", params.Offset))
		defer c.finishSpan(span)
	}

	stub, err := c.ensure()
	if err != nil {
		return nil, c.fail(span, "ListJobs", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var resp *pb.ListJobsResponse
	err = c.invoke(func() error {
		r, callErr := stub.ListJobs(ctx, &pb.ListJobsRequest{
			Status:   params.Status,
			Limit:    params.Limit,
			Offset:   params.Offset,
			Date:     params.Date,
			DeviceId: params.DeviceID,
		})
		if callErr != nil {
			return translateError(c.endpoint, callErr)
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, c.fail(span, "ListJobs", err)
	}

	c.record("ListJobs", start)
	if span != nil {
		span.SetTag("distance.result_count", fmt.Sprintf("%d", len(resp.Jobs)))
		span.SetTag("distance.total_count", fmt.Sprintf("%d", resp.TotalCount))
	}
	return resp, nil
}

// HealthCheck probes the worker with a minimal ListJobs call. It returns
// false on any RPC error rather than propagating.
func (c *Client) HealthCheck(ctx context.Context) bool {
	stub, err := c.ensure()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	_, err = stub.ListJobs(ctx, &pb.ListJobsRequest{Limit: 1})
	return err == nil
}

func (c *Client) startSpan(ctx context.Context, name string) (*tracing.Span, context.Context) {
	if c.tracer == nil {
		return nil, ctx
	}
	return c.tracer.StartSpan(ctx, name)
}

func (c *Client) finishSpan(span *tracing.Span) {
	span.Finish()
	c.tracer.Submit(span)
}

func (c *Client) fail(span *tracing.Span, method string, err error) error {
	if span != nil {
		span.SetError(err)
	}
	if c.metrics != nil {
		kind := KindInternal
		if de, ok := AsError(err); ok {
			kind = de.Kind
		}
		c.metrics.RecordGRPCError(method, kind.String())
	}
	return err
}

func (c *Client) record(method string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordGRPCCall(method, "ok", time.Since(start))
	}
}
