package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deppfellow/v1-api/internal/lib/newsletter"
	"github.com/hibiken/asynq"
)

func (j *JobService) handleNewsletterSubscribeTask(ctx context.Context, t *asynq.Task) error {
	var p NewsletterSubscribePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal newsletter payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskNewsletterSubscribe).
		Str("user_group", p.UserGroup).
		Logger()

	result, err := j.newsletter.Subscribe(ctx, p.Email, p.UserGroup)
	if err != nil {
		if errors.Is(err, newsletter.ErrRejected) {
			reason := err.Error()
			if result != nil && result.Message != "" {
				reason = result.Message
			}

			// The provider answered; retrying will not change its mind.
			logger.Warn().Str("reason", reason).Msg("newsletter subscription rejected")
			return fmt.Errorf("%s: %w", reason, asynq.SkipRetry)
		}

		logger.Error().Err(err).Msg("newsletter subscription failed")
		return err
	}

	logger.Info().Str("subscription_id", result.ID).Msg("newsletter subscription delivered")

	if j.email == nil {
		return nil
	}

	task, err := NewWelcomeEmailTask(p.Email, p.UserGroup)
	if err != nil {
		return fmt.Errorf("failed to build welcome email task: %w", err)
	}

	// The subscription is already delivered; a lost welcome email must not
	// re-run it.
	if err := j.Enqueue(ctx, task); err != nil {
		logger.Error().Err(err).Msg("failed to enqueue welcome email")
	}

	return nil
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}

	if j.email == nil {
		j.logger.Debug().Str("type", TaskWelcome).Msg("email disabled, dropping welcome email")
		return nil
	}

	j.logger.Info().
		Str("type", TaskWelcome).
		Msg("processing welcome email task")

	if err := j.email.SendWelcomeEmail(p.To, p.UserGroup); err != nil {
		j.logger.Error().
			Str("type", TaskWelcome).
			Err(err).
			Msg("failed to send welcome email")
		return err // asynq marks the task failed and schedules a retry
	}

	j.logger.Info().
		Str("type", TaskWelcome).
		Msg("successfully sent welcome email")

	return nil
}
