package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Invocation errors
	ErrCodeUnknownOption   ErrorCode = "UNKNOWN_OPTION"
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// Session errors
	ErrCodeNoSession ErrorCode = "NO_SESSION"

	// Control tool errors
	ErrCodeToolNotFound             ErrorCode = "TOOL_NOT_FOUND"
	ErrCodeExternalInvocationFailed ErrorCode = "EXTERNAL_INVOCATION_FAILED"

	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// DispatchError represents a structured error with context
type DispatchError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *DispatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DispatchError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *DispatchError) WithDetail(key string, value interface{}) *DispatchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *DispatchError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new DispatchError
func New(code ErrorCode, message string) *DispatchError {
	return &DispatchError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a DispatchError
func Wrap(err error, code ErrorCode, message string) *DispatchError {
	return &DispatchError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As returns the first DispatchError in err's chain.
func As(err error) (*DispatchError, bool) {
	for err != nil {
		if de, ok := err.(*DispatchError); ok {
			return de, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// Is checks if an error is a specific DispatchError code
func Is(err error, code ErrorCode) bool {
	de, ok := As(err)
	if !ok {
		return false
	}
	return de.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	de, ok := As(err)
	if !ok {
		return ""
	}
	return de.Code
}
