// Package apiclient is a typed Go client for the V1 API.
//
// Every call returns a Result: either the decoded payload or an *APIError,
// never both. Transport failures are reported the same way, with Status 0.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/deppfellow/v1-api/internal/errs"
	"github.com/deppfellow/v1-api/internal/model"
)

// CodeNetwork marks an APIError that never reached the server's handlers.
const CodeNetwork = "NETWORK_ERROR"

// APIError is the client-side view of the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  []errs.FieldError
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// Field returns the message attached to one request field.
func (e *APIError) Field(name string) (string, bool) {
	for _, fe := range e.Fields {
		if fe.Field == name {
			return fe.Error, true
		}
	}
	return "", false
}

// Result holds exactly one of Data or Err.
type Result[T any] struct {
	Data *T
	Err  *APIError
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Unwrap converts the result into the usual (value, error) pair.
func (r Result[T]) Unwrap() (*T, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Data, nil
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func NewFromConfig(cfg config.ClientConfig) *Client {
	return New(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
}

func (c *Client) SearchProducts(ctx context.Context, query string) Result[model.SearchProductsResponse] {
	return call[model.SearchProductsResponse](ctx, c, http.MethodPost, "/api/products/search",
		model.SearchProductsRequest{Query: query})
}

func (c *Client) CreateOrder(ctx context.Context, product string, quantity int) Result[model.CreateOrderResponse] {
	return call[model.CreateOrderResponse](ctx, c, http.MethodPost, "/api/orders",
		model.CreateOrderRequest{Product: product, Quantity: &quantity})
}

func (c *Client) CalculateShipping(ctx context.Context, weight float64) Result[model.CalculateShippingResponse] {
	return call[model.CalculateShippingResponse](ctx, c, http.MethodPost, "/api/shipping/calculate",
		model.CalculateShippingRequest{Weight: &weight})
}

// GetUser asks for a generated id when userID is empty.
func (c *Client) GetUser(ctx context.Context, userID string) Result[model.User] {
	req := model.GetUserRequest{}
	if userID != "" {
		req.UserID = &userID
	}
	return call[model.User](ctx, c, http.MethodPost, "/api/users", req)
}

func (c *Client) GetMetrics(ctx context.Context) Result[model.Metrics] {
	return call[model.Metrics](ctx, c, http.MethodGet, "/api/metrics", nil)
}

func (c *Client) Subscribe(ctx context.Context, email, userGroup string) Result[model.SubscribeResponse] {
	return call[model.SubscribeResponse](ctx, c, http.MethodPost, "/api/subscribe",
		model.SubscribeRequest{Email: email, UserGroup: userGroup})
}

func (c *Client) Health(ctx context.Context) Result[model.HealthResponse] {
	return call[model.HealthResponse](ctx, c, http.MethodGet, "/health", nil)
}

func networkError(format string, args ...any) *APIError {
	return &APIError{Code: CodeNetwork, Message: fmt.Sprintf(format, args...)}
}

func call[T any](ctx context.Context, c *Client, method, path string, payload any) Result[T] {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Result[T]{Err: networkError("failed to marshal request: %v", err)}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Result[T]{Err: networkError("failed to create request: %v", err)}
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result[T]{Err: networkError("request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result[T]{Err: networkError("failed to read response: %v", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return Result[T]{Err: decodeError(resp.StatusCode, raw)}
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return Result[T]{Err: &APIError{
			Status:  resp.StatusCode,
			Code:    "INVALID_RESPONSE",
			Message: fmt.Sprintf("failed to decode response: %v", err),
		}}
	}

	return Result[T]{Data: &data}
}

// decodeError reads the error envelope, falling back to the status text
// when the body is not one (a proxy page, for instance).
func decodeError(status int, raw []byte) *APIError {
	var envelope errs.HTTPError
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Message == "" {
		return &APIError{
			Status:  status,
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(status)),
			Message: http.StatusText(status),
		}
	}

	return &APIError{
		Status:  status,
		Code:    envelope.Code,
		Message: envelope.Message,
		Fields:  envelope.Errors,
	}
}
