package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every failure returned by the ledger core matches exactly one
// of these with errors.Is.
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrStorage is returned when the underlying store is unavailable or inconsistent
	ErrStorage = errors.New("storage error")
)

var (
	// ErrCustomerNotFound is returned when no customer matches the given identity.
	ErrCustomerNotFound = newKind("customer does not exist in database, add customer first", ErrNotFound)
	// ErrAccountNotFound is returned when an account id does not resolve.
	ErrAccountNotFound = newKind("account not found", ErrNotFound)
	// ErrCustomerAlreadyExists is returned together with the existing record on duplicate registration.
	ErrCustomerAlreadyExists = newKind("customer already exists", ErrAlreadyExists)
	// ErrInvalidAmount is returned for non-positive transfer amounts.
	ErrInvalidAmount = newKind("amount must be positive and not zero", ErrValidation)
	// ErrAmountPrecision is returned for amounts with more than four decimal places.
	ErrAmountPrecision = newKind("amount must have at most 4 decimal places", ErrValidation)
	// ErrAmountOutOfRange is returned when an amount or the balance it produces
	// does not fit the stored numeric(20,4) range.
	ErrAmountOutOfRange = newKind("amount must be below 10000000000000000 in magnitude", ErrValidation)
	// ErrInsufficientFunds is returned when a debit would overdraw an account and overdraft is disabled.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type kindError struct {
	msg  string
	kind error
}

func newKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// FieldError names one missing or invalid input.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the complete list of inputs that were rejected.
// It matches ErrValidation and, when set, its Cause.
type ValidationError struct {
	Cause  error
	Fields []FieldError
}

// NewValidationError builds a ValidationError for the given cause and fields.
// A nil cause means a plain shape validation failure.
func NewValidationError(cause error, fields ...FieldError) *ValidationError {
	return &ValidationError{Cause: cause, Fields: fields}
}

// Missing returns the names of fields rejected because they were absent.
func (e *ValidationError) Missing() []string {
	var out []string
	for _, f := range e.Fields {
		if f.Reason == ReasonRequired {
			out = append(out, f.Field)
		}
	}
	return out
}

// ReasonRequired marks a field that was absent from the input.
const ReasonRequired = "required"

// Error reports the cause when there is one; the fields are available to
// callers that render them separately.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValidation, e.Cause}
	}
	return []error{ErrValidation}
}

// StorageError wraps an unexpected store failure so it matches ErrStorage
// while keeping the original error in the chain.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
