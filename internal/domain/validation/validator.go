// Package validation implements the submission validators and the
// composite that aggregates them.
package validation

// Validator checks one aspect of an input and reports every failed check
// as a human-readable message. Implementations must be side-effect free.
type Validator[T any] interface {
	Validate(input T) (bool, []string)
}
