package bank

import "errors"

// FailureKind classifies why a bank call failed. Both kinds are terminal
// for the current submission attempt: no retry, no partial record.
type FailureKind string

const (
	// FailureTransport covers calls that never completed or came back with
	// a non-success status.
	FailureTransport FailureKind = "TRANSPORT"
	// FailureParse covers calls that succeeded on the wire but whose body
	// could not be decoded into a PaymentResponse.
	FailureParse FailureKind = "PARSE"
)

const (
	transportFailureMessage = "Request to bank was not successful."
	parseFailureMessage     = "Request to bank was successful but was unable to parse the response data and could not store it."
)

// BankError is the classified failure of one outbound bank call.
type BankError struct {
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *BankError) Error() string {
	if e.Kind == FailureParse {
		return parseFailureMessage
	}
	return transportFailureMessage
}

func (e *BankError) Unwrap() error {
	return e.Err
}

func newTransportError(statusCode int, err error) *BankError {
	return &BankError{Kind: FailureTransport, StatusCode: statusCode, Err: err}
}

func newParseError(err error) *BankError {
	return &BankError{Kind: FailureParse, Err: err}
}

func IsBankError(err error) (*BankError, bool) {
	var bankErr *BankError
	ok := errors.As(err, &bankErr)
	return bankErr, ok
}
