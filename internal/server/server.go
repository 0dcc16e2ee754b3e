package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/stuartshay/otel-demo/internal/api/http"
	"github.com/stuartshay/otel-demo/internal/api/middleware"
	"github.com/stuartshay/otel-demo/internal/grpc/distance"
	"github.com/stuartshay/otel-demo/internal/infrastructure/config"
	"github.com/stuartshay/otel-demo/internal/infrastructure/logging"
	"github.com/stuartshay/otel-demo/internal/infrastructure/monitoring"
	"github.com/stuartshay/otel-demo/internal/infrastructure/resilience"
	"github.com/stuartshay/otel-demo/internal/infrastructure/tracing"
	"github.com/stuartshay/otel-demo/internal/storage"
	"github.com/stuartshay/otel-demo/internal/store"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg      *config.Config
	logger   *logging.Logger
	router   *gin.Engine
	http     *http.Server
	distance *distance.Client
	pool     *pgxpool.Pool
}

// New wires the full service from configuration: logger, tracer,
// metrics, the distance worker client, the optional database pool, the
// storage service, middleware, and the route table.
func New(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		return nil, err
	}

	tracer := tracing.New(cfg.Service.Name, logger.Logger)
	metrics := monitoring.NewMetrics()

	breaker := resilience.New("distance-worker", resilience.Settings{
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	distanceClient := distance.New(
		cfg.Distance.Endpoint,
		time.Duration(cfg.Distance.TimeoutSeconds)*time.Second,
	).WithTracer(tracer).WithMetrics(metrics).WithBreaker(breaker)
	logger.Info("distance worker client configured",
		zap.String("endpoint", cfg.Distance.Endpoint),
		zap.Int("timeout_seconds", cfg.Distance.TimeoutSeconds),
	)

	// The database is optional; without credentials the endpoints answer
	// 503 DB_NOT_CONFIGURED.
	var (
		pool      *pgxpool.Pool
		locations apihttp.LocationReader
	)
	if cfg.DatabaseConfigured() {
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		p, err := store.Connect(ctx, cfg.Database)
		cancel()
		if err != nil {
			logger.Warn("database unavailable, db endpoints disabled", zap.Error(err))
		} else {
			pool = p
			locations = store.NewLocationStore(pool)
			logger.Info("database pool initialized",
				zap.String("host", cfg.Database.Host),
				zap.Int("port", cfg.Database.Port),
				zap.String("database", cfg.Database.Name),
			)
		}
	} else {
		logger.Info("database credentials absent, db endpoints disabled")
	}

	files, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitFromConfig(cfg.RateLimit)))
	}

	handlers := apihttp.NewHandlers(cfg, logger, tracer, metrics, distanceClient, locations, files)
	registerRoutes(router, handlers)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	return &Server{
		cfg:      cfg,
		logger:   logger,
		router:   router,
		http:     srv,
		distance: distanceClient,
		pool:     pool,
	}, nil
}

func registerRoutes(router *gin.Engine, h *apihttp.Handlers) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/info", h.Info)
	router.GET("/observability", h.Observability)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/chain", h.Chain)
	router.GET("/error", h.SimulateError)
	router.GET("/slow", h.Slow)

	router.GET("/db/status", h.DBStatus)
	router.GET("/db/locations", h.DBLocations)

	router.GET("/files", h.GetFiles)
	router.POST("/files", h.MakeDirectory)
	router.GET("/files/*path", h.GetFiles)
	router.POST("/files/*path", h.WriteFile)
	router.PUT("/files/*path", h.WriteFile)
	router.DELETE("/files/*path", h.DeleteFile)

	api := router.Group("/api/distance")
	api.POST("/calculate", h.Calculate)
	api.GET("/jobs", h.ListJobs)
	api.GET("/jobs/:job_id", h.GetJobStatus)
	api.GET("/download/:filename", h.DownloadCSV)
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and releases resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	err := s.http.Shutdown(ctx)

	if cerr := s.distance.Close(); cerr != nil {
		s.logger.Error("failed to close distance client", zap.Error(cerr))
	}
	if s.pool != nil {
		s.pool.Close()
	}
	_ = s.logger.Sync()

	return err
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
