// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-sock library.

package api

import "fmt"

// Common errors used across the library.
//
// Transport-level failures (connection refused, timeout, address in use,
// host unreachable) are never wrapped into these: channels propagate them
// unchanged so callers can match against the net/os error values directly.
var (
	ErrNoRoute              = fmt.Errorf("no channel routes to destination")
	ErrUnsupportedFamily    = fmt.Errorf("unsupported sockaddr family")
	ErrInvalidAddressFormat = fmt.Errorf("invalid address format")
	ErrNotSupported         = fmt.Errorf("operation not supported")
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrChannelClosed        = fmt.Errorf("channel is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeNoRoute
	ErrCodeUnsupportedFamily
	ErrCodeInvalidAddressFormat
	ErrCodeNotSupported
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
