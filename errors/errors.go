package errors

import (
	"errors"
	"fmt"
)

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrConfig           = fmt.Errorf("invalid configuration")
	ErrTransport        = fmt.Errorf("stream transport error")
	ErrMissingField     = fmt.Errorf("missing field")
	ErrMalformedMessage = fmt.Errorf("malformed message")
	ErrWrite            = fmt.Errorf("record write failed")

	// ErrStreamRejected is an ErrTransport the platform will keep answering the same way, bad credentials for instance
	ErrStreamRejected = fmt.Errorf("%w: stream rejected", ErrTransport)
)

// MissingFieldError names the dotted path of the sub-field a content message lacks.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// MissingField builds a MissingFieldError for the given path.
func MissingField(field string) error {
	return &MissingFieldError{Field: field}
}

// FieldOf returns the field carried by err, if any.
func FieldOf(err error) (string, bool) {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Field, true
	}
	return "", false
}
