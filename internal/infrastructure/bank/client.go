package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cardstream/payment-gateway/internal/config"
)

// HTTPBankClient performs the single outbound authorization call against
// the acquiring bank. Exactly one request goes out per Submit invocation;
// there is no retry, caching or deduplication at this layer.
type HTTPBankClient struct {
	url        string
	httpClient *http.Client
}

func NewBankClient(cfg config.BankConfig) *HTTPBankClient {
	return &HTTPBankClient{
		url: cfg.PaymentsURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

// Submit posts the request to the bank and classifies failures: transport
// errors and non-2xx statuses come back as FailureTransport, undecodable
// success bodies as FailureParse. Cancellation propagates through ctx.
func (c *HTTPBankClient) Submit(ctx context.Context, req PaymentRequest) (*PaymentResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, newTransportError(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newTransportError(resp.StatusCode, nil)
	}

	return decodePaymentResponse(resp.Body)
}

// decodePaymentResponse enforces the wire contract strictly: both
// authorized and authorization_code must be present. A null document or a
// body missing either field is a parse failure, not a zero-value decision.
func decodePaymentResponse(body io.Reader) (*PaymentResponse, error) {
	var doc struct {
		Authorized        *bool   `json:"authorized"`
		AuthorizationCode *string `json:"authorization_code"`
	}
	if err := json.NewDecoder(body).Decode(&doc); err != nil {
		return nil, newParseError(err)
	}
	if doc.Authorized == nil || doc.AuthorizationCode == nil {
		return nil, newParseError(errors.New("response missing authorized or authorization_code"))
	}

	return &PaymentResponse{
		Authorized:        *doc.Authorized,
		AuthorizationCode: *doc.AuthorizationCode,
	}, nil
}
