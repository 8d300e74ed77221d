package bank_test

import (
	"testing"

	"github.com/cardstream/payment-gateway/internal/domain"
	"github.com/cardstream/payment-gateway/internal/infrastructure/bank"
	"github.com/stretchr/testify/assert"
)

func TestNewPaymentRequest_ZeroPadsSingleDigitMonth(t *testing.T) {
	sub := domain.Submission{
		CardNumber:  "1234567890123456",
		ExpiryMonth: 3,
		ExpiryYear:  2024,
		Currency:    "GBP",
		CVV:         "123",
		Amount:      250,
	}

	req := bank.NewPaymentRequest(sub)

	assert.Equal(t, "03/2024", req.ExpiryDate)
	assert.Equal(t, sub.CardNumber, req.CardNumber)
	assert.Equal(t, sub.Currency, req.Currency)
	assert.Equal(t, sub.CVV, req.Cvv)
	assert.Equal(t, sub.Amount, req.Amount)
}

func TestNewPaymentRequest_DoubleDigitMonthUnchanged(t *testing.T) {
	sub := domain.Submission{
		CardNumber:  "1234567890123456",
		ExpiryMonth: 11,
		ExpiryYear:  2024,
		Currency:    "USD",
		CVV:         "4567",
		Amount:      1,
	}

	req := bank.NewPaymentRequest(sub)

	assert.Equal(t, "11/2024", req.ExpiryDate)
}
