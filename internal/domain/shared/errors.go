// Package shared contains common domain errors that are used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
// The console router maps each kind to exactly one user-facing line.
var (
	// ErrValidation marks a field that failed its format rules
	// (phone, birthday, name).
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an operation on an unknown contact name.
	ErrNotFound = errors.New("entity not found")

	// ErrParse marks a command line that cannot be interpreted.
	ErrParse = errors.New("malformed command")

	// ErrUsage marks a command invoked with the wrong number of arguments.
	// The DomainError message carries the prompt shown to the user.
	ErrUsage = errors.New("wrong usage")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "contact", "addressbook", "console"
	Op      string // Operation that failed, e.g., "NewPhone", "Change"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// NewUsageError creates an ErrUsage error whose message is the prompt
// the user should see.
func NewUsageError(command, prompt string) *DomainError {
	return NewDomainError("console", command, ErrUsage, prompt)
}

// Contact domain errors
var (
	ErrInvalidPhone    = NewDomainError("contact", "NewPhone", ErrValidation, "phone number must contain 10 digits")
	ErrInvalidBirthday = NewDomainError("contact", "NewBirthday", ErrValidation, "invalid birthday format, expected dd.mm.yyyy")
	ErrInvalidName     = NewDomainError("contact", "NewName", ErrValidation, "name cannot be empty")
	ErrContactNotFound = NewDomainError("contact", "Find", ErrNotFound, "contact not found")
	ErrNoPhones        = NewDomainError("contact", "FirstPhone", ErrParse, "contact has no phones")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsParse checks if the error is a command parsing error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsUsage checks if the error is an argument-count error.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// UsagePrompt returns the prompt carried by an ErrUsage error.
func UsagePrompt(err error) (string, bool) {
	var de *DomainError
	if errors.As(err, &de) && errors.Is(de.Kind, ErrUsage) {
		return de.Message, true
	}
	return "", false
}
