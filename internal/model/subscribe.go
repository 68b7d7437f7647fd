package model

import (
	"strings"

	"github.com/deppfellow/v1-api/internal/validation"
)

// SubscribeRequest is the body of POST /api/subscribe. Browser forms send
// the group as userGroup, API clients as user_group; both are accepted.
type SubscribeRequest struct {
	Email         string `json:"email" validate:"required,email"`
	UserGroup     string `json:"user_group" validate:"required"`
	UserGroupForm string `json:"userGroup,omitempty" validate:"-"`
}

func (r *SubscribeRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)

	if r.UserGroup == "" {
		r.UserGroup = r.UserGroupForm
	}
	r.UserGroup = strings.TrimSpace(r.UserGroup)

	return validation.Struct(r)
}

type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}
