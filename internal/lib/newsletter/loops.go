package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LoopsClient posts subscriptions to a Loops newsletter form.
type LoopsClient struct {
	baseURL string
	formID  string
	apiKey  string
	client  *http.Client
	logger  *zerolog.Logger
}

// NewLoopsClient returns a client for the form formID. baseURL defaults to
// https://app.loops.so.
func NewLoopsClient(baseURL, formID, apiKey string, logger *zerolog.Logger) *LoopsClient {
	if baseURL == "" {
		baseURL = "https://app.loops.so"
	}

	return &LoopsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		formID:  formID,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type loopsRequest struct {
	Email     string `json:"email"`
	UserGroup string `json:"userGroup"`
}

// loopsResponse fields are all optional; Success is a pointer so an absent
// field can fall back to the HTTP status.
type loopsResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Subscribe posts to /api/newsletter-form/{formID}. A transport failure or
// an unreadable answer is returned as an error; a readable refusal is
// returned as a Result with Success false alongside ErrRejected.
func (c *LoopsClient) Subscribe(ctx context.Context, email, userGroup string) (*Result, error) {
	body, err := json.Marshal(loopsRequest{Email: email, UserGroup: userGroup})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.baseURL + "/api/newsletter-form/" + url.PathEscape(c.formID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("loops request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read loops response: %w", err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var decoded loopsResponse
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			if !ok {
				return nil, fmt.Errorf("loops returned status %d: %s", resp.StatusCode, string(raw))
			}
			return nil, fmt.Errorf("failed to decode loops response: %w", err)
		}
	}

	result := &Result{
		Success: ok,
		Message: decoded.Message,
		ID:      decoded.ID,
	}
	if decoded.Success != nil {
		result.Success = *decoded.Success
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Bool("success", result.Success).
		Str("user_group", userGroup).
		Msg("loops subscribe answered")

	if !result.Success {
		if result.Message == "" {
			result.Message = fmt.Sprintf("Subscription failed with status %d", resp.StatusCode)
		}
		return result, ErrRejected
	}

	return result, nil
}
