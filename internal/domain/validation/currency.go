package validation

// recognizedCurrencies is the fixed set of currency codes the gateway
// accepts. Deliberately a small subset of ISO 4217, not the full table.
var recognizedCurrencies = map[string]struct{}{
	"ADA": {},
	"EUR": {},
	"GBP": {},
	"LVL": {},
	"USD": {},
}

// CurrencyValidator checks a currency code against the recognized set.
type CurrencyValidator struct{}

func NewCurrencyValidator() *CurrencyValidator {
	return &CurrencyValidator{}
}

// Validate emits a single message whatever the failure cause: wrong case,
// wrong length and unrecognized codes are indistinguishable to the caller.
func (v *CurrencyValidator) Validate(code string) (bool, []string) {
	if _, ok := recognizedCurrencies[code]; ok {
		return true, nil
	}
	return false, []string{"Currency Code must be a recognised three character code, in upper case."}
}
