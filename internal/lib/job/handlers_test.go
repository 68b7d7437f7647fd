package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/deppfellow/v1-api/internal/lib/email"
	"github.com/deppfellow/v1-api/internal/lib/newsletter"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default"}, nil
}

type fakeProvider struct {
	calls  []NewsletterSubscribePayload
	result *newsletter.Result
	err    error
}

func (f *fakeProvider) Subscribe(_ context.Context, email, userGroup string) (*newsletter.Result, error) {
	f.calls = append(f.calls, NewsletterSubscribePayload{Email: email, UserGroup: userGroup})
	return f.result, f.err
}

func newTestService(provider newsletter.Provider, enq Enqueuer, emailClient *email.Client) *JobService {
	logger := zerolog.Nop()
	return &JobService{
		logger:     &logger,
		enqueuer:   enq,
		newsletter: provider,
		email:      emailClient,
	}
}

func subscribeTask(t *testing.T) *asynq.Task {
	t.Helper()

	task, err := NewNewsletterSubscribeTask("test@example.com", "general")
	require.NoError(t, err)
	return task
}

func TestNewNewsletterSubscribeTask(t *testing.T) {
	task := subscribeTask(t)
	assert.Equal(t, TaskNewsletterSubscribe, task.Type())

	var p NewsletterSubscribePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, NewsletterSubscribePayload{Email: "test@example.com", UserGroup: "general"}, p)
}

func TestHandleNewsletterSubscribe_DeliversAndQueuesWelcome(t *testing.T) {
	provider := &fakeProvider{result: &newsletter.Result{Success: true, ID: "sub-1"}}
	enq := &fakeEnqueuer{}

	logger := zerolog.Nop()
	emailClient := email.NewClient(config.IntegrationConfig{ResendAPIKey: "re_test", EmailFrom: "x@example.com"}, &logger)

	j := newTestService(provider, enq, emailClient)

	require.NoError(t, j.handleNewsletterSubscribeTask(context.Background(), subscribeTask(t)))

	assert.Len(t, provider.calls, 1)
	require.Len(t, enq.tasks, 1)
	assert.Equal(t, TaskWelcome, enq.tasks[0].Type())
}

func TestHandleNewsletterSubscribe_NoEmailClient(t *testing.T) {
	provider := &fakeProvider{result: &newsletter.Result{Success: true}}
	enq := &fakeEnqueuer{}

	j := newTestService(provider, enq, nil)

	require.NoError(t, j.handleNewsletterSubscribeTask(context.Background(), subscribeTask(t)))
	assert.Empty(t, enq.tasks)
}

func TestHandleNewsletterSubscribe_RejectionSkipsRetry(t *testing.T) {
	provider := &fakeProvider{
		result: &newsletter.Result{Success: false, Message: "Email already on list"},
		err:    newsletter.ErrRejected,
	}

	j := newTestService(provider, &fakeEnqueuer{}, nil)

	err := j.handleNewsletterSubscribeTask(context.Background(), subscribeTask(t))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Contains(t, err.Error(), "Email already on list")
}

func TestHandleNewsletterSubscribe_TransportErrorRetries(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection reset")}

	j := newTestService(provider, &fakeEnqueuer{}, nil)

	err := j.handleNewsletterSubscribeTask(context.Background(), subscribeTask(t))
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleNewsletterSubscribe_BadPayload(t *testing.T) {
	j := newTestService(&fakeProvider{}, &fakeEnqueuer{}, nil)

	err := j.handleNewsletterSubscribeTask(context.Background(), asynq.NewTask(TaskNewsletterSubscribe, []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleWelcomeEmail_DisabledIsNoop(t *testing.T) {
	j := newTestService(&fakeProvider{}, &fakeEnqueuer{}, nil)

	task, err := NewWelcomeEmailTask("test@example.com", "general")
	require.NoError(t, err)

	assert.NoError(t, j.handleWelcomeEmailTask(context.Background(), task))
}

func TestEnqueue_PropagatesError(t *testing.T) {
	j := newTestService(&fakeProvider{}, &fakeEnqueuer{err: errors.New("redis down")}, nil)

	assert.ErrorContains(t, j.Enqueue(context.Background(), subscribeTask(t)), "redis down")
}

func TestInitHandlers_KeepsNoopWithoutProvider(t *testing.T) {
	j := newTestService(newsletter.NoopProvider{}, &fakeEnqueuer{}, nil)
	j.InitHandlers(nil, nil)

	_, ok := j.newsletter.(newsletter.NoopProvider)
	assert.True(t, ok)
}
