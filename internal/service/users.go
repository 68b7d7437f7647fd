package service

import (
	"context"

	"github.com/deppfellow/v1-api/internal/lib/counter"
	"github.com/deppfellow/v1-api/internal/logger"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// placeholderEmail is returned for every user; there is no user directory.
const placeholderEmail = "user@example.com"

type UserService struct {
	counters counter.Store
	logger   *zerolog.Logger
}

func NewUserService(counters counter.Store, logger *zerolog.Logger) *UserService {
	return &UserService{
		counters: counters,
		logger:   logger,
	}
}

// Get echoes the requested id, or generates a UUID when none is given. Only
// generated users count towards the users counter.
func (s *UserService) Get(ctx context.Context, req *model.GetUserRequest) (*model.User, error) {
	id := req.ID()
	generated := id == ""

	names := []counter.Name{counter.APICalls}
	if generated {
		names = append(names, counter.Users)
	}

	if err := s.counters.Record(ctx, names...); err != nil {
		return nil, err
	}

	if generated {
		id = uuid.NewString()
		logger.FromContext(ctx, s.logger).Debug().Str("user_id", id).Msg("generated user id")
	}

	return &model.User{
		ID:    id,
		Name:  "User " + id,
		Email: placeholderEmail,
	}, nil
}
