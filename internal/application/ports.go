package application

import (
	"context"

	"github.com/cardstream/payment-gateway/internal/domain"
	"github.com/cardstream/payment-gateway/internal/infrastructure/bank"
)

// BankClient is the port for the external acquiring bank.
type BankClient interface {
	Submit(ctx context.Context, req bank.PaymentRequest) (*bank.PaymentResponse, error)
}

// PaymentStore is the port for recorded payments.
type PaymentStore interface {
	Add(payment *domain.Payment) error
	TryGet(id string) (*domain.Payment, bool)
}
