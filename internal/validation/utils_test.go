package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/v1-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderPayload struct {
	Product  string `json:"product" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,gt=0"`
	Note     string `json:"note" validate:"omitempty,max=5"`
}

func (p *orderPayload) Validate() error {
	return Struct(p)
}

type customPayload struct {
	Value string `json:"value"`
}

func (p *customPayload) Validate() error {
	if p.Value != "ok" {
		return CustomValidationErrors{{Field: "value", Message: "must be ok"}}
	}
	return nil
}

func bind(t *testing.T, body string, payload Validatable) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	return BindAndValidate(c, payload)
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	payload := &orderPayload{}
	require.NoError(t, bind(t, `{"product":"Widget","quantity":2}`, payload))

	assert.Equal(t, "Widget", payload.Product)
	assert.Equal(t, 2, *payload.Quantity)
}

func TestBindAndValidate_TagFailures(t *testing.T) {
	httpErr := asHTTPError(t, bind(t, `{"quantity":0,"note":"too long"}`, &orderPayload{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, []errs.FieldError{
		{Field: "product", Error: "is required"},
		{Field: "quantity", Error: "must be greater than 0"},
		{Field: "note", Error: "must not exceed 5 characters"},
	}, httpErr.Errors)
	assert.Equal(t,
		"Validation failed: product is required; quantity must be greater than 0; note must not exceed 5 characters",
		httpErr.Message)
}

func TestBindAndValidate_EmptyBody(t *testing.T) {
	httpErr := asHTTPError(t, bind(t, ``, &orderPayload{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Len(t, httpErr.Errors, 2)
}

func TestBindAndValidate_WrongType(t *testing.T) {
	httpErr := asHTTPError(t, bind(t, `{"product":"Widget","quantity":"two"}`, &orderPayload{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	msg, ok := httpErr.Field("quantity")
	assert.True(t, ok)
	assert.Equal(t, "must be an integer", msg)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	httpErr := asHTTPError(t, bind(t, `{"product":`, &orderPayload{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Contains(t, httpErr.Message, "Invalid request body")
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	httpErr := asHTTPError(t, bind(t, `{"value":"nope"}`, &customPayload{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, []errs.FieldError{{Field: "value", Error: "must be ok"}}, httpErr.Errors)

	require.NoError(t, bind(t, `{"value":"ok"}`, &customPayload{}))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("3f2b8c1e-8d4a-4b6e-9f1a-2c3d4e5f6a7b"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}
