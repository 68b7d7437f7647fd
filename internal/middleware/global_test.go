package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/v1-api/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"app error passes through", errs.NewBadRequestError("Weight must be positive", true, nil, nil, nil), http.StatusBadRequest, "Weight must be positive"},
		{"wrapped app error", fmt.Errorf("ctx: %w", errs.NewExternalServiceError("down")), http.StatusBadGateway, "down"},
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "Not found"},
		{"wrong method", echo.ErrMethodNotAllowed, http.StatusNotFound, "Not found"},
		{"echo rate limit", echo.ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
		{"echo timeout", echo.ErrServiceUnavailable.WithInternal(context.DeadlineExceeded), http.StatusServiceUnavailable, "Service Unavailable"},
		{"constraint violation", &pgconn.PgError{Code: "23514", TableName: "orders", ColumnName: "quantity"}, http.StatusBadRequest, "The Quantity value does not meet required conditions"},
		{"unknown error is sanitized", errors.New("secret connection string"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := toHTTPError(tt.err)
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestRequestID_RejectsOversizedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("a", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})(c)

	assert.NoError(t, err)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotNil(t, GetLogger(c))
}
