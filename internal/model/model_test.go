package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// failedFields returns the JSON names of the fields that failed validation.
func failedFields(t *testing.T, err error) []string {
	t.Helper()

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validator.ValidationErrors, got %T", err)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

func TestSearchProductsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SearchProductsRequest{Query: "widget"}).Validate())

	err := (&SearchProductsRequest{}).Validate()
	assert.Equal(t, []string{"query"}, failedFields(t, err))
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		req    CreateOrderRequest
		failed []string
	}{
		{"valid", CreateOrderRequest{Product: "Widget", Quantity: ptr(2)}, nil},
		{"missing product", CreateOrderRequest{Quantity: ptr(1)}, []string{"product"}},
		{"missing quantity", CreateOrderRequest{Product: "Widget"}, []string{"quantity"}},
		{"zero quantity", CreateOrderRequest{Product: "Widget", Quantity: ptr(0)}, []string{"quantity"}},
		{"negative quantity", CreateOrderRequest{Product: "Widget", Quantity: ptr(-3)}, []string{"quantity"}},
		{"empty body", CreateOrderRequest{}, []string{"product", "quantity"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.failed == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.failed, failedFields(t, err))
		})
	}
}

func TestCalculateShippingRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CalculateShippingRequest{Weight: ptr(5.5)}).Validate())

	// Non-positive weights are well formed; the service rejects them.
	assert.NoError(t, (&CalculateShippingRequest{Weight: ptr(0.0)}).Validate())
	assert.NoError(t, (&CalculateShippingRequest{Weight: ptr(-1.0)}).Validate())

	err := (&CalculateShippingRequest{}).Validate()
	assert.Equal(t, []string{"weight"}, failedFields(t, err))
}

func TestGetUserRequest(t *testing.T) {
	req := &GetUserRequest{}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "", req.ID())

	req = &GetUserRequest{UserID: ptr("user-42")}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "user-42", req.ID())

	long := strings.Repeat("u", 300)
	req = &GetUserRequest{UserID: &long}
	assert.NoError(t, req.Validate())
	assert.Equal(t, long, req.ID())
}

func TestSubscribeRequest_Validate(t *testing.T) {
	t.Run("snake case group", func(t *testing.T) {
		req := &SubscribeRequest{Email: "test@example.com", UserGroup: "general"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "general", req.UserGroup)
	})

	t.Run("camel case group is normalized", func(t *testing.T) {
		req := &SubscribeRequest{Email: " test@example.com ", UserGroupForm: "beta"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "beta", req.UserGroup)
		assert.Equal(t, "test@example.com", req.Email)
	})

	t.Run("invalid email", func(t *testing.T) {
		err := (&SubscribeRequest{Email: "invalid-email", UserGroup: "general"}).Validate()
		assert.Equal(t, []string{"email"}, failedFields(t, err))
	})

	t.Run("missing group", func(t *testing.T) {
		err := (&SubscribeRequest{Email: "test@example.com"}).Validate()
		assert.Equal(t, []string{"user_group"}, failedFields(t, err))
	})
}

func TestNewCreateOrderResponse(t *testing.T) {
	resp := NewCreateOrderResponse(&Order{ID: "o-1", Product: "Widget", Quantity: 2, Status: OrderStatusCreated})

	assert.Equal(t, &CreateOrderResponse{OrderID: "o-1", Product: "Widget", Status: "created"}, resp)
}
