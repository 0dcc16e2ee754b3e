package distance

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stuartshay/otel-demo/internal/infrastructure/resilience"
	pb "github.com/stuartshay/otel-demo/proto/distance"
)

// fakeStub implements pb.DistanceServiceClient in memory.
type fakeStub struct {
	calculateResp *pb.CalculateDistanceResponse
	statusResp    *pb.GetJobStatusResponse
	listResp      *pb.ListJobsResponse
	err           error

	listCalls atomic.Int32
}

func (f *fakeStub) CalculateDistanceFromHome(ctx context.Context, in *pb.CalculateDistanceRequest, opts ...grpc.CallOption) (*pb.CalculateDistanceResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.calculateResp, nil
}

func (f *fakeStub) GetJobStatus(ctx context.Context, in *pb.GetJobStatusRequest, opts ...grpc.CallOption) (*pb.GetJobStatusResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.statusResp, nil
}

func (f *fakeStub) ListJobs(ctx context.Context, in *pb.ListJobsRequest, opts ...grpc.CallOption) (*pb.ListJobsResponse, error) {
	f.listCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.listResp, nil
}

type nopCloser struct {
	closes atomic.Int32
}

func (n *nopCloser) Close() error {
	n.closes.Add(1)
	return nil
}

func newTestClient(stub *fakeStub) (*Client, *nopCloser, *atomic.Int32) {
	closer := &nopCloser{}
	var connects atomic.Int32
	c := New("localhost:50051", time.Second)
	c.connect = func() (pb.DistanceServiceClient, io.Closer, error) {
		connects.Add(1)
		return stub, closer, nil
	}
	return c, closer, &connects
}

func TestConcurrentFirstCallConnectsOnce(t *testing.T) {
	stub := &fakeStub{listResp: &pb.ListJobsResponse{}}
	c, _, connects := newTestClient(stub)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.ListJobs(context.Background(), ListParams{Limit: 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), connects.Load())
}

func TestSubmitReturnsResponse(t *testing.T) {
	stub := &fakeStub{calculateResp: &pb.CalculateDistanceResponse{
		JobId:  "job-123",
		Status: "queued",
	}}
	c, _, _ := newTestClient(stub)

	resp, err := c.Submit(context.Background(), "2025-01-15", "phone_1")
	require.NoError(t, err)
	assert.Equal(t, "job-123", resp.JobId)
	assert.Equal(t, "queued", resp.Status)
}

func TestSubmitTranslatesErrors(t *testing.T) {
	stub := &fakeStub{err: status.Error(codes.Unavailable, "worker down")}
	c, _, _ := newTestClient(stub)

	_, err := c.Submit(context.Background(), "2025-01-15", "")
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}

func TestGetStatusTranslatesValidation(t *testing.T) {
	stub := &fakeStub{err: status.Error(codes.NotFound, "no such job")}
	c, _, _ := newTestClient(stub)

	_, err := c.GetStatus(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy when list succeeds", func(t *testing.T) {
		stub := &fakeStub{listResp: &pb.ListJobsResponse{}}
		c, _, _ := newTestClient(stub)

		assert.True(t, c.HealthCheck(context.Background()))
		assert.Equal(t, int32(1), stub.listCalls.Load())
	})

	t.Run("unhealthy on rpc error", func(t *testing.T) {
		stub := &fakeStub{err: status.Error(codes.Unavailable, "down")}
		c, _, _ := newTestClient(stub)

		assert.False(t, c.HealthCheck(context.Background()))
	})

	t.Run("unhealthy when connect fails", func(t *testing.T) {
		c := New("localhost:50051", time.Second)
		c.connect = func() (pb.DistanceServiceClient, io.Closer, error) {
			return nil, nil, io.ErrClosedPipe
		}

		assert.False(t, c.HealthCheck(context.Background()))
	})
}

func TestConnectFailureSurfacesAsUnavailable(t *testing.T) {
	c := New("localhost:50051", time.Second)
	c.connect = func() (pb.DistanceServiceClient, io.Closer, error) {
		return nil, nil, io.ErrClosedPipe
	}

	_, err := c.ListJobs(context.Background(), ListParams{Limit: 1})
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "localhost:50051")
}

func TestCloseIdempotent(t *testing.T) {
	stub := &fakeStub{listResp: &pb.ListJobsResponse{}}
	c, closer, _ := newTestClient(stub)

	_, err := c.ListJobs(context.Background(), ListParams{Limit: 1})
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, int32(1), closer.closes.Load())
}

func TestCloseWithoutConnect(t *testing.T) {
	c := New("localhost:50051", time.Second)
	assert.NoError(t, c.Close())
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	stub := &fakeStub{err: status.Error(codes.Unavailable, "worker down")}
	c, _, _ := newTestClient(stub)
	c.WithBreaker(resilience.New("distance-worker", resilience.Settings{
		FailureThreshold: 2,
		ResetTimeout:     time.Minute,
	}))

	for i := 0; i < 2; i++ {
		_, err := c.ListJobs(context.Background(), ListParams{Limit: 1})
		require.Error(t, err)
	}
	require.Equal(t, int32(2), stub.listCalls.Load())

	// Open circuit short-circuits without touching the stub.
	_, err := c.ListJobs(context.Background(), ListParams{Limit: 1})
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "circuit open")
	assert.Equal(t, int32(2), stub.listCalls.Load())
}

func TestBreakerIgnoresValidationErrors(t *testing.T) {
	stub := &fakeStub{err: status.Error(codes.NotFound, "no such job")}
	c, _, _ := newTestClient(stub)
	breaker := resilience.New("distance-worker", resilience.Settings{
		FailureThreshold: 1,
		ResetTimeout:     time.Minute,
	})
	c.WithBreaker(breaker)

	for i := 0; i < 3; i++ {
		_, err := c.GetStatus(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
	assert.Equal(t, resilience.StateClosed, breaker.State())
}
