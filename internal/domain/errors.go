package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input shape")
	ErrRequired              = errors.New("required field missing")
	ErrInvalidType           = errors.New("invalid type")
	ErrUnsupportedRecordType = errors.New("unsupported record type")
	ErrSubdomainNotFound     = errors.New("subdomain not found")
	ErrInvalidValue          = errors.New("invalid record value")

	ErrFilterNotFound  = errors.New("filter not found")
	ErrInvalidArgument = errors.New("invalid filter argument")

	ErrDocumentReadFailed  = errors.New("document read failed")
	ErrDocumentParseFailed = errors.New("document parse failed")
	ErrKeyNotFound         = errors.New("key not found")
	ErrOutputWriteFailed   = errors.New("output write failed")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func WrapEntity(entity, name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s[%s]: %w", entity, name, err)
}

// InputError reports a value that does not have the shape a filter expects.
// Path locates the value inside the filter input, e.g. "[0].subdomains[2]".
type InputError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *InputError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return ErrInvalidInput.Error() + ": " + msg
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func NewInputError(path, reason string, cause error) error {
	return &InputError{Path: path, Reason: reason, Cause: cause}
}

// Invalidf builds an InputError without a cause.
func Invalidf(path, format string, args ...any) error {
	return &InputError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
