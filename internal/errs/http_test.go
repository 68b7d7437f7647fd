package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_JSONShape(t *testing.T) {
	err := NewUnprocessableEntityError("Validation failed", []FieldError{
		{Field: "product", Error: "is required"},
	})

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, "Validation failed", got["error"])
	assert.Equal(t, "UNPROCESSABLE_ENTITY", got["code"])
	assert.EqualValues(t, http.StatusUnprocessableEntity, got["status"])
	assert.Len(t, got["errors"], 1)
	assert.NotContains(t, got, "action")
	assert.NotContains(t, got, "message")
}

func TestHTTPError_OmitsEmptyFieldErrors(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("Not found", false, nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{"code":"NOT_FOUND","error":"Not found","status":404,"override":false}`, string(body))
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("creating order: %w", NewBadRequestError("Weight must be positive", true, nil, nil, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestHTTPError_WithMessage(t *testing.T) {
	orig := NewBadRequestError("a", true, nil, []FieldError{{Field: "x", Error: "y"}}, nil)
	copied := orig.WithMessage("b")

	assert.Equal(t, "a", orig.Message)
	assert.Equal(t, "b", copied.Message)
	assert.Equal(t, orig.Errors, copied.Errors)
	assert.Equal(t, orig.Status, copied.Status)
}

func TestHTTPError_Field(t *testing.T) {
	err := NewUnprocessableEntityError("Validation failed", []FieldError{
		{Field: "email", Error: "must be a valid email address"},
	})

	msg, ok := err.Field("email")
	assert.True(t, ok)
	assert.Equal(t, "must be a valid email address", msg)

	_, ok = err.Field("user_group")
	assert.False(t, ok)
}

func TestConstructors(t *testing.T) {
	code := "ORDER_NOT_FOUND"

	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("x", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("x", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("x", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found custom code", NewNotFoundError("x", false, &code), http.StatusNotFound, code},
		{"unprocessable", NewUnprocessableEntityError("x", nil), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"too many requests", NewTooManyRequestsError("x"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"external", NewExternalServiceError("x"), http.StatusBadGateway, CodeExternalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}
