package validation

import "github.com/cardstream/payment-gateway/internal/domain"

// SubmissionValidator aggregates the field, expiry and currency validators.
// All three always run so every applicable error is collected; the merged
// error list keeps validator declaration order (field, expiry, currency).
type SubmissionValidator struct {
	fields   Validator[domain.Submission]
	expiry   Validator[domain.Submission]
	currency Validator[string]
}

func NewSubmissionValidator(
	fields Validator[domain.Submission],
	expiry Validator[domain.Submission],
	currency Validator[string],
) *SubmissionValidator {
	return &SubmissionValidator{
		fields:   fields,
		expiry:   expiry,
		currency: currency,
	}
}

func (v *SubmissionValidator) Validate(sub domain.Submission) (bool, []string) {
	fieldsOK, fieldErrs := v.fields.Validate(sub)
	expiryOK, expiryErrs := v.expiry.Validate(sub)
	currencyOK, currencyErrs := v.currency.Validate(sub.Currency)

	var errs []string
	errs = append(errs, fieldErrs...)
	errs = append(errs, expiryErrs...)
	errs = append(errs, currencyErrs...)

	return fieldsOK && expiryOK && currencyOK, errs
}
