package service

import (
	"context"
	"errors"

	"github.com/deppfellow/v1-api/internal/errs"
	"github.com/deppfellow/v1-api/internal/lib/counter"
	"github.com/deppfellow/v1-api/internal/lib/job"
	"github.com/deppfellow/v1-api/internal/lib/newsletter"
	"github.com/deppfellow/v1-api/internal/logger"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

const subscriptionReceived = "Subscription received"

// taskEnqueuer is satisfied by *job.JobService.
type taskEnqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error
}

// SubscriptionService hands subscriptions to the newsletter provider. With a
// job queue the hand-off is asynchronous; without one the provider is called
// inline and its failures are reported to the client.
type SubscriptionService struct {
	provider newsletter.Provider
	jobs     taskEnqueuer
	counters counter.Store
	logger   *zerolog.Logger
}

func NewSubscriptionService(provider newsletter.Provider, jobs taskEnqueuer, counters counter.Store, logger *zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{
		provider: provider,
		jobs:     jobs,
		counters: counters,
		logger:   logger,
	}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResponse, error) {
	if err := s.counters.Record(ctx, counter.APICalls); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx, s.logger)

	if s.jobs != nil {
		task, err := job.NewNewsletterSubscribeTask(req.Email, req.UserGroup)
		if err != nil {
			return nil, err
		}

		if err := s.jobs.Enqueue(ctx, task); err != nil {
			log.Error().Err(err).Msg("failed to enqueue newsletter subscription")
			return nil, errs.NewExternalServiceError("Subscription could not be queued")
		}

		log.Info().Str("user_group", req.UserGroup).Msg("newsletter subscription queued")

		return &model.SubscribeResponse{Success: true, Message: subscriptionReceived}, nil
	}

	result, err := s.provider.Subscribe(ctx, req.Email, req.UserGroup)
	if err != nil {
		if errors.Is(err, newsletter.ErrRejected) && result != nil && result.Message != "" {
			return nil, errs.NewExternalServiceError(result.Message)
		}

		log.Error().Err(err).Msg("newsletter provider request failed")
		return nil, errs.NewExternalServiceError("Newsletter provider unavailable")
	}

	log.Info().Str("user_group", req.UserGroup).Msg("newsletter subscription delivered")

	return &model.SubscribeResponse{
		Success: true,
		Message: result.Message,
		ID:      result.ID,
	}, nil
}
