package bank_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cardstream/payment-gateway/internal/config"
	"github.com/cardstream/payment-gateway/internal/infrastructure/bank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentRequest() bank.PaymentRequest {
	return bank.PaymentRequest{
		CardNumber: "1234567890123456",
		ExpiryDate: "04/2027",
		Currency:   "GBP",
		Amount:     100,
		Cvv:        "123",
	}
}

func newClient(url string) *bank.HTTPBankClient {
	return bank.NewBankClient(config.BankConfig{
		PaymentsURL: url,
		ConnTimeout: 5 * time.Second,
	})
}

func TestSubmit_Success(t *testing.T) {
	var gotBody bank.PaymentRequest
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(bank.PaymentResponse{
			Authorized:        true,
			AuthorizationCode: "auth-123",
		})
	}))
	defer server.Close()

	client := newClient(server.URL)

	resp, err := client.Submit(context.Background(), paymentRequest())

	require.NoError(t, err)
	assert.True(t, resp.Authorized)
	assert.Equal(t, "auth-123", resp.AuthorizationCode)
	assert.Equal(t, paymentRequest(), gotBody)
	assert.Equal(t, 1, calls, "exactly one outbound call per invocation")
}

func TestSubmit_NonSuccessStatusIsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newClient(server.URL)

	resp, err := client.Submit(context.Background(), paymentRequest())

	require.Error(t, err)
	assert.Nil(t, resp)

	bankErr, ok := bank.IsBankError(err)
	require.True(t, ok)
	assert.Equal(t, bank.FailureTransport, bankErr.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, bankErr.StatusCode)
	assert.Equal(t, "Request to bank was not successful.", err.Error())
}

func TestSubmit_UnreachableBankIsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newClient(server.URL)

	_, err := client.Submit(context.Background(), paymentRequest())

	require.Error(t, err)
	bankErr, ok := bank.IsBankError(err)
	require.True(t, ok)
	assert.Equal(t, bank.FailureTransport, bankErr.Kind)
	assert.Equal(t, "Request to bank was not successful.", err.Error())
}

func TestSubmit_UnparseableBodyIsParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := newClient(server.URL)

	resp, err := client.Submit(context.Background(), paymentRequest())

	require.Error(t, err)
	assert.Nil(t, resp)

	bankErr, ok := bank.IsBankError(err)
	require.True(t, ok)
	assert.Equal(t, bank.FailureParse, bankErr.Kind)
	assert.Equal(t, "Request to bank was successful but was unable to parse the response data and could not store it.", err.Error())
}

func TestSubmit_IncompleteBodyIsParseFailure(t *testing.T) {
	// bodies that unmarshal fine but carry no usable decision
	tests := []struct {
		name string
		body string
	}{
		{name: "null document", body: `null`},
		{name: "empty object", body: `{}`},
		{name: "missing authorization code", body: `{"authorized": true}`},
		{name: "missing authorized flag", body: `{"authorization_code": "auth-123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newClient(server.URL)

			resp, err := client.Submit(context.Background(), paymentRequest())

			require.Error(t, err)
			assert.Nil(t, resp, "no decision may be synthesized from an incomplete body")

			bankErr, ok := bank.IsBankError(err)
			require.True(t, ok)
			assert.Equal(t, bank.FailureParse, bankErr.Kind)
		})
	}
}

func TestSubmit_CancelledContextAborts(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The body must be drained before the server will watch for a
		// client disconnect and cancel the request context.
		io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Submit(ctx, paymentRequest())

	require.Error(t, err)
	bankErr, ok := bank.IsBankError(err)
	require.True(t, ok)
	assert.Equal(t, bank.FailureTransport, bankErr.Kind)
}
