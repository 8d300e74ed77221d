package services

import (
	"context"
	"strings"

	"github.com/cardstream/payment-gateway/internal/application"
	"github.com/cardstream/payment-gateway/internal/domain"
	"github.com/cardstream/payment-gateway/internal/domain/validation"
	"github.com/cardstream/payment-gateway/internal/infrastructure/bank"
)

const rejectionPrefix = "Payment rejected because request was invalid. "

// SubmitResult is the outcome of one submission attempt. Exactly one of
// the two shapes is populated: a rejected result carries the formatted
// rejection message, an accepted one carries the stored record. Bank
// declines are accepted results with a Declined record.
type SubmitResult struct {
	Accepted  bool
	Rejection string
	Payment   *domain.Payment
}

func acceptedResult(payment *domain.Payment) *SubmitResult {
	return &SubmitResult{Accepted: true, Payment: payment}
}

func rejectedResult(message string) *SubmitResult {
	return &SubmitResult{Accepted: false, Rejection: message}
}

// SubmitService orchestrates one submission end to end: composite
// validation, translation to the bank wire shape, the single bank call,
// record synthesis and storage.
type SubmitService struct {
	validator     validation.Validator[domain.Submission]
	bankClient    application.BankClient
	recordCreator *RecordCreator
	store         application.PaymentStore
}

func NewSubmitService(
	validator validation.Validator[domain.Submission],
	bankClient application.BankClient,
	recordCreator *RecordCreator,
	store application.PaymentStore,
) *SubmitService {
	return &SubmitService{
		validator:     validator,
		bankClient:    bankClient,
		recordCreator: recordCreator,
		store:         store,
	}
}

// Submit validates the command and, on a unanimous pass, runs the bank
// pipeline. Validation failures come back as a rejected result, never an
// error; bank and storage failures propagate as errors with nothing
// stored.
func (s *SubmitService) Submit(ctx context.Context, cmd SubmitPaymentCommand) (*SubmitResult, error) {
	sub := cmd.submission()

	if valid, validationErrors := s.validator.Validate(sub); !valid {
		return rejectedResult(rejectionMessage(validationErrors)), nil
	}

	return s.submitValid(ctx, sub)
}

func (s *SubmitService) submitValid(ctx context.Context, sub domain.Submission) (*SubmitResult, error) {
	bankReq := bank.NewPaymentRequest(sub)

	bankResp, err := s.bankClient.Submit(ctx, bankReq)
	if err != nil {
		if _, ok := bank.IsBankError(err); ok {
			return nil, application.NewBankProcessingError(err)
		}
		return nil, application.NewInternalError(err)
	}

	payment := s.recordCreator.Create(sub, *bankResp)
	if err := s.store.Add(payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	return acceptedResult(payment), nil
}

func rejectionMessage(validationErrors []string) string {
	if len(validationErrors) == 0 {
		return rejectionPrefix + "Unable to find reason for invalid request."
	}
	return rejectionPrefix + "Invalid reasons: " + strings.Join(validationErrors, ", ")
}
