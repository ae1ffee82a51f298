package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultResendEndpoint is the Resend transactional email API.
const DefaultResendEndpoint = "https://api.resend.com/emails"

// Message is the outbound payload for a single email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ResendClient sends email through the Resend HTTP API.
type ResendClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewResendClient creates a client for the Resend API. An empty endpoint
// selects the production API.
func NewResendClient(apiKey, endpoint string) *ResendClient {
	if endpoint == "" {
		endpoint = DefaultResendEndpoint
	}
	return &ResendClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Send posts a message and returns the provider's response payload.
func (c *ResendClient) Send(ctx context.Context, msg Message) (json.RawMessage, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("email provider request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read email provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, payload)
	}

	return json.RawMessage(payload), nil
}
