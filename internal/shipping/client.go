package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront-backend/internal/models"
)

const (
	calculateFeePath = "/shipping/calculate-fee"
	requestTimeout   = 15 * time.Second
)

// FeeCalculator is the carrier boundary consumed by the quoter.
type FeeCalculator interface {
	CalculateFee(ctx context.Context, query models.ShippingFeeQuery) (*models.ShippingFeeResult, error)
}

// Client calls the external carrier fee API. The carrier wraps the fee in
// two nested envelopes, each with its own success flag and message; this
// client is the only place that knows about that shape.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a carrier client with a bounded request timeout.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// rawFeeEnvelope is the outer carrier response envelope.
type rawFeeEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Result  *rawFeeResult `json:"result"`
}

// rawFeeResult is the inner envelope. Fee stays raw JSON because the
// carrier has been observed to return non-numeric values there.
type rawFeeResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Fee     json.RawMessage `json:"fee"`
}

// CalculateFee posts the query to the carrier and maps the nested
// response to the canonical result. Transport problems are returned as
// errors; carrier-reported failures and malformed fees come back as an
// unsuccessful result with a reason.
func (c *Client) CalculateFee(ctx context.Context, query models.ShippingFeeQuery) (*models.ShippingFeeResult, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fee query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+calculateFeePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build fee request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("carrier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("carrier returned status %d", resp.StatusCode)
	}

	var envelope rawFeeEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode carrier response: %w", err)
	}

	return flattenEnvelope(&envelope), nil
}

// flattenEnvelope checks both success flags and the fee value before
// trusting the response. A present-but-non-numeric fee is a failure, not
// a parse panic.
func flattenEnvelope(envelope *rawFeeEnvelope) *models.ShippingFeeResult {
	if !envelope.Success {
		return failedResult(envelope.Message, "carrier rejected the request")
	}
	if envelope.Result == nil {
		return failedResult("", "carrier response missing result")
	}
	if !envelope.Result.Success {
		return failedResult(envelope.Result.Message, "carrier could not calculate a fee")
	}

	var fee float64
	if len(envelope.Result.Fee) == 0 || json.Unmarshal(envelope.Result.Fee, &fee) != nil {
		return failedResult("", "carrier response missing a numeric fee")
	}
	if fee < 0 {
		return failedResult("", "carrier returned a negative fee")
	}

	return &models.ShippingFeeResult{Success: true, Fee: fee}
}

func failedResult(message, fallback string) *models.ShippingFeeResult {
	reason := message
	if reason == "" {
		reason = fallback
	}
	return &models.ShippingFeeResult{Success: false, Reason: reason}
}
