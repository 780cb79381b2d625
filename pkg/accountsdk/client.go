// Package accountsdk provides the request/response types of the tabaccounts
// HTTP API together with a small client for service-to-service use and
// end-to-end tests.
package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to a tabaccounts service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns the created user.
func (c *Client) Register(ctx context.Context, email, password string) (User, error) {
	var out RegisterResponse
	err := c.do(ctx, http.MethodPost, "/register", RegisterRequest{Email: email, Password: password}, "", http.StatusCreated, &out)
	return out.User, err
}

// Login exchanges credentials for a signed bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, "", http.StatusOK, &out)
	return out.Token, err
}

// Me returns the profile of the user the token was issued to.
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	var out MeResponse
	err := c.do(ctx, http.MethodGet, "/me", nil, token, http.StatusOK, &out)
	return out.User, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, token string, wantStatus int, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errBody ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
			apiErr.Errors = errBody.Errors
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
