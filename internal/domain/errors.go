package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeDuplicateRecord = "DUPLICATE_RECORD"
	ErrCodeRecordNotFound  = "RECORD_NOT_FOUND"
)

// NewDuplicateRecordError reports an Add with an ID that is already stored.
// IDs are generated by the injected ID source, so hitting this means a
// broken source, not a runtime condition callers should handle.
func NewDuplicateRecordError(id string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateRecord,
		Message: fmt.Sprintf("payment record with ID %s already exists", id),
		Err:     err,
	}
}

func NewRecordNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeRecordNotFound,
		Message: fmt.Sprintf("payment with ID %s not found", id),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
