package service

import "errors"

// Kind tags a service error so callers can branch on failure class
// without inspecting message strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
)

// Error is the failure type every service operation returns. Message is
// safe to surface to the caller; Err keeps the underlying cause for logs
// and is deliberately absent from unknown-kind messages.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func notFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func conflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func unauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func unknownError(message string, cause error) *Error {
	return &Error{Kind: KindUnknown, Message: message, Err: cause}
}

// KindOf extracts the error kind, defaulting to KindUnknown for anything
// that is not a service error.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindUnknown
}
