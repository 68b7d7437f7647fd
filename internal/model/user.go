package model

import "github.com/deppfellow/v1-api/internal/validation"

// GetUserRequest is the body of POST /api/users. A missing, null or empty
// user_id asks the server to generate one.
type GetUserRequest struct {
	UserID *string `json:"user_id"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

// ID returns the requested id, or "" when one must be generated.
func (r *GetUserRequest) ID() string {
	if r.UserID == nil {
		return ""
	}
	return *r.UserID
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
