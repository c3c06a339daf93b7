package common

import (
	"errors"
	"fmt"
)

// AppError carries a machine-readable code alongside the message so the
// HTTP layer can map upstream failures to status codes.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError wraps an underlying error with a code and context message.
func WrapError(code, message string, err error) error {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewError creates an error with no underlying cause.
func NewError(code, message string) error {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Error codes. NotFound and RateLimited are user-facing; TransportError
// covers network and parse failures; RenderError indicates a programming
// defect, not a user error.
const (
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeRateLimited = "RATE_LIMITED"
	ErrCodeTransport   = "TRANSPORT_ERROR"
	ErrCodeRender      = "RENDER_ERROR"
	ErrCodeInternal    = "INTERNAL_ERROR"
)

func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound reports whether err means the profile does not exist upstream.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsRateLimited reports whether err means the upstream is throttling us.
func IsRateLimited(err error) bool {
	return hasCode(err, ErrCodeRateLimited)
}
