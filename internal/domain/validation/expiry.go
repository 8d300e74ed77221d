package validation

import (
	"time"

	"github.com/cardstream/payment-gateway/internal/domain"
)

// ExpiryValidator checks that the card has not expired relative to an
// injected clock, so tests can pin the current date.
type ExpiryValidator struct {
	now func() time.Time
}

func NewExpiryValidator(now func() time.Time) *ExpiryValidator {
	return &ExpiryValidator{now: now}
}

// Validate treats the current month as still valid: a card expiring this
// month passes, only strictly past dates fail.
func (v *ExpiryValidator) Validate(sub domain.Submission) (bool, []string) {
	current := v.now()

	if sub.ExpiryYear > current.Year() {
		return true, nil
	}

	if sub.ExpiryYear < current.Year() {
		return false, []string{"Expiry Year must be in the future."}
	}

	if sub.ExpiryMonth >= int(current.Month()) {
		return true, nil
	}

	return false, []string{"Expiry Month must be in the future."}
}
