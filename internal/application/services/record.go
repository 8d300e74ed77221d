package services

import (
	"github.com/cardstream/payment-gateway/internal/domain"
	"github.com/cardstream/payment-gateway/internal/infrastructure/bank"
)

// RecordCreator builds the stored payment record from a submission and the
// bank's decision. The ID source is injected so tests can pin IDs; the
// production wiring passes uuid.NewString.
type RecordCreator struct {
	newID func() string
}

func NewRecordCreator(newID func() string) *RecordCreator {
	return &RecordCreator{newID: newID}
}

// Create maps authorized=true to Authorized and authorized=false to
// Declined; a decline is a fully processed payment, not a failure. Expiry,
// currency and amount come from the original submission, not the wire
// request or the bank response.
func (c *RecordCreator) Create(sub domain.Submission, resp bank.PaymentResponse) *domain.Payment {
	status := domain.StatusDeclined
	if resp.Authorized {
		status = domain.StatusAuthorized
	}

	// Field validation upstream guarantees at least 14 digits.
	lastFour := sub.CardNumber[len(sub.CardNumber)-4:]

	return &domain.Payment{
		ID:                 c.newID(),
		Status:             status,
		CardNumberLastFour: lastFour,
		ExpiryMonth:        sub.ExpiryMonth,
		ExpiryYear:         sub.ExpiryYear,
		Currency:           sub.Currency,
		Amount:             sub.Amount,
	}
}
