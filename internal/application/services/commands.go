package services

import "github.com/cardstream/payment-gateway/internal/domain"

// SubmitPaymentCommand carries one payment submission into the pipeline.
type SubmitPaymentCommand struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	CVV         string
	Amount      int64
}

func (c SubmitPaymentCommand) submission() domain.Submission {
	return domain.Submission{
		CardNumber:  c.CardNumber,
		ExpiryMonth: c.ExpiryMonth,
		ExpiryYear:  c.ExpiryYear,
		Currency:    c.Currency,
		CVV:         c.CVV,
		Amount:      c.Amount,
	}
}
