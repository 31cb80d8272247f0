// Package sms sends operator notifications through a Twilio-compatible
// messaging API. Sends are best-effort by contract: failures are logged
// and reported to the caller in-band, never retried.
package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rigparts/storefront/internal/config"
	"github.com/rigparts/storefront/internal/pkg/httpretry"
)

// ErrNotConfigured is returned when account credentials are missing.
// Configuration absence surfaces at call time, not at construction, so a
// storefront without SMS credentials still boots.
var ErrNotConfigured = errors.New("sms: provider credentials not configured")

// Message is an outbound SMS.
type Message struct {
	To   string
	From string
	Body string
}

// SendResult is the provider's acknowledgment of an accepted message.
type SendResult struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// providerError is the provider's JSON error body.
type providerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Client is a messaging-provider API client.
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	httpClient httpretry.HTTPDoer
}

// NewClient creates a messaging client from config. The underlying HTTP
// client never retries: a duplicate operator text is worse than a
// dropped one.
func NewClient(cfg config.SMSConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		httpClient: httpretry.New(&http.Client{Timeout: cfg.Timeout()}, 0),
	}
}

// Send submits one message. It returns ErrNotConfigured without touching
// the network when credentials are absent.
func (c *Client) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if c.accountSID == "" || c.authToken == "" {
		return nil, ErrNotConfigured
	}
	if msg.To == "" || msg.From == "" {
		return nil, fmt.Errorf("sms: to and from numbers are required")
	}

	form := url.Values{}
	form.Set("To", msg.To)
	form.Set("From", msg.From)
	form.Set("Body", msg.Body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("sms: creating request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sms: executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sms: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var pe providerError
		if json.Unmarshal(body, &pe) == nil && pe.Message != "" {
			return nil, fmt.Errorf("sms: provider error (status %d, code %d): %s", resp.StatusCode, pe.Code, pe.Message)
		}
		return nil, fmt.Errorf("sms: provider error (status %d): %s", resp.StatusCode, string(body))
	}

	var result SendResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("sms: parsing response: %w", err)
	}
	return &result, nil
}
