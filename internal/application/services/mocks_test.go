package services_test

import (
	"context"
	"sync"

	"github.com/cardstream/payment-gateway/internal/infrastructure/bank"
)

// MockBankClient records every request and answers with a canned response
// or error.
type MockBankClient struct {
	mu       sync.Mutex
	requests []bank.PaymentRequest

	SubmitFn func(ctx context.Context, req bank.PaymentRequest) (*bank.PaymentResponse, error)
}

func NewMockBankClient() *MockBankClient {
	return &MockBankClient{}
}

func (m *MockBankClient) Submit(ctx context.Context, req bank.PaymentRequest) (*bank.PaymentResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, req)
	}
	return &bank.PaymentResponse{Authorized: true, AuthorizationCode: "auth-1"}, nil
}

func (m *MockBankClient) Requests() []bank.PaymentRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bank.PaymentRequest(nil), m.requests...)
}
