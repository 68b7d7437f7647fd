// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - usage counters (memory or redis)
//   - database pool, when enabled
//   - redis client, when an address is configured
//   - background job service (asynq), when redis is available
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/deppfellow/v1-api/internal/database"
	"github.com/deppfellow/v1-api/internal/lib/counter"
	"github.com/deppfellow/v1-api/internal/lib/job"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/v1-api/internal/logger"
)

// RedisPingTimeout bounds the startup connectivity check against Redis.
const RedisPingTimeout = 5 * time.Second

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. Optional dependencies (DB, Redis, Job)
// are nil when they are not configured; everything that reads them checks.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	// Counters is shared by every service that records usage.
	Counters counter.Store

	DB *database.Database

	Redis *redis.Client

	// Job enqueues and runs background tasks. Nil without Redis.
	Job *job.JobService

	httpServer *http.Server
}

// New constructs a Server and initializes the configured dependencies.
//
// It does NOT start the HTTP server or the job workers. That is done in
// SetupHTTPServer + Start and Job.Start.
//
// Notes:
//   - An unreachable Redis is fatal only when counters are stored in it.
//     Otherwise the server continues without Redis and without jobs.
//   - An unreachable database is always fatal once it is enabled.
//   - The redis metrics store without a redis address is rejected.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}

	if cfg.Database.Enabled {
		db, err := database.New(ctx, cfg, logger, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		s.DB = db
	}

	if cfg.Redis.Enabled() {
		redisClient, err := newRedisClient(ctx, cfg.Redis, loggerService)
		switch {
		case err == nil:
			s.Redis = redisClient
		case cfg.Metrics.Store == config.MetricsStoreRedis:
			s.closeDB()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		default:
			logger.Error().Err(err).Msg("failed to connect to redis, continuing without redis")
		}
	}

	if s.Redis != nil {
		s.Job = job.NewJobService(logger, cfg)
	}

	if cfg.Metrics.Store == config.MetricsStoreRedis {
		if s.Redis == nil {
			s.closeDB()
			return nil, errors.New("metrics store redis requires a redis address")
		}
		s.Counters = counter.NewRedisStore(s.Redis, cfg.Metrics.KeyPrefix)
	} else {
		s.Counters = counter.NewMemoryStore()
	}

	logger.Info().
		Str("metrics_store", cfg.Metrics.Store).
		Bool("database", s.DB != nil).
		Bool("redis", s.Redis != nil).
		Msg("server dependencies initialized")

	return s, nil
}

func newRedisClient(ctx context.Context, cfg config.RedisConfig, loggerService *loggerPkg.LoggerService) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	pingCtx, cancel := context.WithTimeout(ctx, RedisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, err
	}

	return redisClient, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    s.Config.Server.Address(),
		Handler: handler,

		// Config stores int values, interpreted here as seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops and returns
// nil after a graceful Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("address", s.httpServer.Addr).
		Str("env", s.Config.Primary.Env).
		Str("version", config.Version).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// In-flight requests finish until ctx expires; then jobs, counters, redis,
// the database and the New Relic agent are closed in that order. The first
// error is returned once everything has been attempted.
func (s *Server) Shutdown(ctx context.Context) error {
	var errList []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errList = append(errList, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Counters != nil {
		if err := s.Counters.Close(); err != nil {
			errList = append(errList, fmt.Errorf("failed to close counters: %w", err))
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errList = append(errList, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if err := s.closeDB(); err != nil {
		errList = append(errList, err)
	}

	s.LoggerService.Shutdown()

	return errors.Join(errList...)
}

func (s *Server) closeDB() error {
	if s.DB == nil {
		return nil
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
