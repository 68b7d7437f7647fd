package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/v1-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toHTTP(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(err), &httpErr))
	return httpErr
}

func TestHandleError_UniqueViolation(t *testing.T) {
	err := fmt.Errorf("failed to insert order: %w", &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "orders",
		ConstraintName: "orders_id_key",
	})

	httpErr := toHTTP(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ORDER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Order with this Id already exists", httpErr.Message)
}

func TestHandleError_CheckViolation(t *testing.T) {
	httpErr := toHTTP(t, &pgconn.PgError{Code: "23514", TableName: "orders", ColumnName: "quantity"})

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ORDER_INVALID", httpErr.Code)
	assert.Equal(t, "The Quantity value does not meet required conditions", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	httpErr := toHTTP(t, &pgconn.PgError{Code: "23502", TableName: "orders", ColumnName: "product"})

	assert.Equal(t, "ORDER_REQUIRED", httpErr.Code)
	assert.Equal(t, []errs.FieldError{{Field: "product", Error: "is required"}}, httpErr.Errors)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	httpErr := toHTTP(t, &pgconn.PgError{Code: "23503", TableName: "orders", ColumnName: "customer_id"})

	assert.Equal(t, "ORDER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Customer does not exist", httpErr.Message)
}

func TestHandleError_UnknownPgErrorIsInternal(t *testing.T) {
	httpErr := toHTTP(t, &pgconn.PgError{Code: "53300"})
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleError_NoRows(t *testing.T) {
	httpErr := toHTTP(t, fmt.Errorf("table:orders: %w", pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Order not found", httpErr.Message)

	httpErr = toHTTP(t, pgx.ErrNoRows)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_PassThroughAndFallback(t *testing.T) {
	original := errs.NewBadRequestError("Weight must be positive", true, nil, nil, nil)
	assert.Same(t, original, HandleError(original))

	httpErr := toHTTP(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, CheckViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23514"})))
	assert.Equal(t, Other, ErrCode(errors.New("x")))
}

func TestConvertPgError(t *testing.T) {
	src := &pgconn.PgError{Code: "23505", Severity: "ERROR", Message: "duplicate key", TableName: "orders"}
	converted := ConvertPgError(src)

	assert.Equal(t, UniqueViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "ERROR: duplicate key (SQLSTATE 23505)", converted.Error())
	assert.ErrorIs(t, converted, src)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_subscribers_email"))
	assert.Equal(t, "id", extractColumnForUniqueViolation("orders_id_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("orders_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
