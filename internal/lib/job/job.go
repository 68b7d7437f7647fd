// Package job runs background work on Asynq, a Redis-backed task queue.
//
// Subscriptions are delivered to the newsletter provider from a worker so
// the HTTP request does not wait on a third party; a successful delivery
// queues the welcome email.
package job

import (
	"context"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/deppfellow/v1-api/internal/lib/email"
	"github.com/deppfellow/v1-api/internal/lib/newsletter"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// JobService holds the Asynq client (producer) and server (workers).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server

	logger *zerolog.Logger

	enqueuer Enqueuer

	newsletter newsletter.Provider

	email *email.Client
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6, // subscriptions
				"default":  3, // welcome emails
				"low":      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client:     client,
		server:     server,
		logger:     logger,
		enqueuer:   client,
		newsletter: newsletter.NoopProvider{},
	}
}

// InitHandlers wires the collaborators the task handlers call. A nil email
// client disables welcome emails.
func (j *JobService) InitHandlers(provider newsletter.Provider, emailClient *email.Client) {
	if provider != nil {
		j.newsletter = provider
	}
	j.email = emailClient
}

// Enqueue pushes a task to Redis.
func (j *JobService) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error {
	info, err := j.enqueuer.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}

	j.logger.Debug().
		Str("task", task.Type()).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("task enqueued")

	return nil
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskNewsletterSubscribe, j.handleNewsletterSubscribeTask)
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	return mux
}

// Start launches the workers in the background and returns.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")

	return j.server.Start(j.mux())
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("failed to close job client")
	}
}
