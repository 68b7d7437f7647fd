package service

import (
	"github.com/deppfellow/v1-api/internal/lib/email"
	"github.com/deppfellow/v1-api/internal/lib/job"
	"github.com/deppfellow/v1-api/internal/lib/newsletter"
	"github.com/deppfellow/v1-api/internal/repository"
	"github.com/deppfellow/v1-api/internal/server"
)

type Services struct {
	Products      *ProductService
	Orders        *OrderService
	Shipping      *ShippingService
	Users         *UserService
	Metrics       *MetricsService
	Subscriptions *SubscriptionService
	Job           *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	provider := newNewsletterProvider(s)

	if s.Job != nil {
		s.Job.InitHandlers(provider, email.NewClient(s.Config.Integration, s.Logger))
	}

	// A nil job service must stay a nil interface, not a typed nil.
	var enqueuer taskEnqueuer
	if s.Job != nil {
		enqueuer = s.Job
	}

	return &Services{
		Products:      NewProductService(repos.Products, s.Counters, s.Logger),
		Orders:        NewOrderService(repos.Orders, s.Counters, s.Logger),
		Shipping:      NewShippingService(s.Counters, s.Logger),
		Users:         NewUserService(s.Counters, s.Logger),
		Metrics:       NewMetricsService(repos.Products, s.Counters),
		Subscriptions: NewSubscriptionService(provider, enqueuer, s.Counters, s.Logger),
		Job:           s.Job,
	}, nil
}

// newNewsletterProvider uses Loops when a form id is configured.
func newNewsletterProvider(s *server.Server) newsletter.Provider {
	cfg := s.Config.Integration
	if cfg.LoopsFormID == "" {
		s.Logger.Info().Msg("no newsletter form configured, subscriptions are accepted locally")
		return newsletter.NoopProvider{}
	}

	return newsletter.NewLoopsClient(cfg.LoopsBaseURL, cfg.LoopsFormID, cfg.LoopsAPIKey, s.Logger)
}
