package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input data")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrDuplicateID        = errors.New("identifier already exists")
	ErrDeleteNotConfirmed = errors.New("deletion was not confirmed")

	ErrUnknownSeries = errors.New("unknown metric series")
)

// AppError carries a machine-readable code alongside the message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
