package validation

import "github.com/cardstream/payment-gateway/internal/domain"

const (
	cardNumberMinLen = 14
	cardNumberMaxLen = 19
	currencyLen      = 3
	cvvMinLen        = 3
	cvvMaxLen        = 4
	expiryYearMax    = 9999
)

// FieldValidator performs the structural checks on a submission. Checks are
// independent: a field failing both its length and character-class check
// yields both messages. Wall-clock time is never consulted here; the
// calendar check belongs to ExpiryValidator.
type FieldValidator struct {
	minExpiryYear int
}

func NewFieldValidator(minExpiryYear int) *FieldValidator {
	return &FieldValidator{minExpiryYear: minExpiryYear}
}

func (v *FieldValidator) Validate(sub domain.Submission) (bool, []string) {
	var errs []string

	if sub.Amount < 0 {
		errs = append(errs, "Amount must be non-negative.")
	}
	if len(sub.CardNumber) < cardNumberMinLen || len(sub.CardNumber) > cardNumberMaxLen {
		errs = append(errs, "CardNumber must be between 14 and 19 characters in length.")
	}
	if !isDigits(sub.CardNumber) {
		errs = append(errs, "CardNumber must consist of only the digits 0 to 9.")
	}
	if len(sub.Currency) != currencyLen {
		errs = append(errs, "Currency must be 3 characters in length.")
	}
	if !isUpperAlpha(sub.Currency) {
		errs = append(errs, "Currency must consist of capital letters A to Z.")
	}
	if len(sub.CVV) < cvvMinLen || len(sub.CVV) > cvvMaxLen {
		errs = append(errs, "Cvv must be 3 or 4 characters in length.")
	}
	if !isDigits(sub.CVV) {
		errs = append(errs, "Cvv must consist of only the digits 0 to 9.")
	}
	if sub.ExpiryMonth < 1 || sub.ExpiryMonth > 12 {
		errs = append(errs, "ExpiryMonth must be a valid month from 1 to 12.")
	}
	if sub.ExpiryYear < v.minExpiryYear || sub.ExpiryYear > expiryYearMax {
		errs = append(errs, "ExpiryYear must be a four-digit year in the future.")
	}

	return len(errs) == 0, errs
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
