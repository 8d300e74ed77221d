package validation_test

import (
	"testing"

	"github.com/cardstream/payment-gateway/internal/domain/validation"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyValidator_RecognizedCodes(t *testing.T) {
	v := validation.NewCurrencyValidator()

	for _, code := range []string{"ADA", "GBP", "USD", "LVL", "EUR"} {
		valid, errs := v.Validate(code)

		assert.True(t, valid, "expected %s to be recognized", code)
		assert.Empty(t, errs)
	}
}

func TestCurrencyValidator_RejectsEverythingElseWithOneMessage(t *testing.T) {
	v := validation.NewCurrencyValidator()

	// same message whether the case, the length or the code itself is wrong
	for _, code := range []string{"ada", "gBP", "USB", "DOGE", "LINK", "LUNA", "GB", "Pounds", ""} {
		valid, errs := v.Validate(code)

		assert.False(t, valid, "expected %q to be rejected", code)
		assert.Equal(t, []string{"Currency Code must be a recognised three character code, in upper case."}, errs)
	}
}
