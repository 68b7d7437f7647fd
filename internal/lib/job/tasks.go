package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskNewsletterSubscribe = "newsletter:subscribe"
	TaskWelcome             = "email:welcome"
)

type NewsletterSubscribePayload struct {
	Email     string `json:"email"`
	UserGroup string `json:"user_group"`
}

func NewNewsletterSubscribeTask(email, userGroup string) (*asynq.Task, error) {
	payload, err := json.Marshal(NewsletterSubscribePayload{
		Email:     email,
		UserGroup: userGroup,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskNewsletterSubscribe,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

type WelcomeEmailPayload struct {
	To        string `json:"to"`
	UserGroup string `json:"user_group"`
}

func NewWelcomeEmailTask(to, userGroup string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:        to,
		UserGroup: userGroup,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
