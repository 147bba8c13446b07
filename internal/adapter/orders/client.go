// Package orders is the HTTP client for the upstream order service, the
// collaborator that stores submitted orders for the seller's back office.
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
	"github.com/RoshanShah43/rs-bazar/internal/usecase"
)

type Client struct {
	base  string
	token string
	hc    *http.Client
}

// NewClient builds the order service client. token, when set, is sent as a
// Bearer credential on every submission.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		base:  baseURL,
		token: token,
		hc:    &http.Client{Timeout: timeout},
	}
}

// SubmitOrder posts the payload to /orders. Any failure comes back as a
// *domain.ServiceError whose message is surfaced to the buyer verbatim.
func (c *Client) SubmitOrder(ctx context.Context, payload domain.OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &domain.ServiceError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/orders", bytes.NewReader(body))
	if err != nil {
		return &domain.ServiceError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &domain.ServiceError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// the service reports failures as {"message": "..."}
	var failure struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Message != "" {
		return &domain.ServiceError{Message: failure.Message}
	}
	return &domain.ServiceError{Message: fmt.Sprintf("order service: status %d", resp.StatusCode)}
}

var _ usecase.OrderSubmitter = (*Client)(nil)
