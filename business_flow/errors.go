// Package businessflow contains the core business logic for accounts, sessions and leads
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Account-related errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")

	// Lead-related errors
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadSource = errors.New("invalid lead source")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
	ErrInvalidNumber     = errors.New("invalid number")

	// Filter errors
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("limit must be between 1 and 100")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

// ValidationMessage returns the message of the innermost BusinessError in err's chain,
// or the text of the innermost error when there is none.
func ValidationMessage(err error) string {
	msg := ""
	found := false
	for e := err; e != nil; e = errors.Unwrap(e) {
		if be, ok := e.(*BusinessError); ok {
			msg = be.Message
			found = true
		} else if !found {
			msg = e.Error()
		}
	}
	return msg
}

func IsAccountNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

func IsEmailAlreadyExists(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsInvalidNumber(err error) bool {
	return errors.Is(err, ErrInvalidNumber)
}

func IsLeadNotFound(err error) bool {
	return errors.Is(err, ErrLeadNotFound)
}

func IsInvalidLeadSource(err error) bool {
	return errors.Is(err, ErrInvalidLeadSource)
}

func IsInvalidLeadStatus(err error) bool {
	return errors.Is(err, ErrInvalidLeadStatus)
}

func IsInvalidFilter(err error) bool {
	return errors.Is(err, ErrInvalidFilter)
}

func IsInvalidPage(err error) bool {
	return errors.Is(err, ErrInvalidPage)
}

func IsInvalidPageSize(err error) bool {
	return errors.Is(err, ErrInvalidPageSize)
}

// IsValidationError reports whether err stems from malformed client input
func IsValidationError(err error) bool {
	return IsInvalidFilter(err) || IsInvalidPage(err) || IsInvalidPageSize(err) ||
		IsInvalidLeadSource(err) || IsInvalidLeadStatus(err) || IsInvalidNumber(err)
}
