package bank

import (
	"fmt"

	"github.com/cardstream/payment-gateway/internal/domain"
)

// NewPaymentRequest maps a validated submission onto the bank wire shape.
// The expiry month is zero-padded into MM/YYYY; everything else is copied
// verbatim. No validation happens here, the submission has already passed
// the composite validator by the time it reaches the wire.
func NewPaymentRequest(sub domain.Submission) PaymentRequest {
	return PaymentRequest{
		CardNumber: sub.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%d", sub.ExpiryMonth, sub.ExpiryYear),
		Currency:   sub.Currency,
		Amount:     sub.Amount,
		Cvv:        sub.CVV,
	}
}
