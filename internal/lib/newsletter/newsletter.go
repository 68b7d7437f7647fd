// Package newsletter hands subscribe requests to the mailing list provider.
package newsletter

import (
	"context"
	"errors"
)

// ErrRejected is returned when the provider answered but refused the
// subscription.
var ErrRejected = errors.New("subscription rejected by provider")

// Result is the provider's answer to a subscribe request.
type Result struct {
	Success bool
	Message string
	ID      string
}

// Provider subscribes an email address to a user group.
type Provider interface {
	Subscribe(ctx context.Context, email, userGroup string) (*Result, error)
}

// NoopProvider accepts every subscription without contacting anyone. It is
// used when no provider is configured.
type NoopProvider struct{}

func (NoopProvider) Subscribe(_ context.Context, _, _ string) (*Result, error) {
	return &Result{Success: true, Message: "Subscription received"}, nil
}
