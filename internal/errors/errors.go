// Package errors provides the coded error kinds used across cli-studies.
//
// Every failure the core can report carries a machine-readable Code so the
// presentation layer can decide how to surface it (status bar, log entry)
// without string matching:
//
//   - INVALID_DATE: a filter date bound could not be parsed
//   - OUT_OF_RANGE: picker coordinates outside the grid
//   - UNKNOWN_*: a value outside one of the closed catalogues
//   - DUPLICATE_STUDY, INVALID_CATALOGUE: the embedded study fixture is bad
//   - INVALID_CONFIG: the user configuration failed validation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownPreset, "unknown preset %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownPreset) {
//	    // keep the previous layout
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Filter errors
	ErrCodeInvalidDate  Code = "INVALID_DATE"
	ErrCodeUnknownField Code = "UNKNOWN_FIELD"

	// Closed catalogue lookups
	ErrCodeUnknownPreset   Code = "UNKNOWN_PRESET"
	ErrCodeUnknownModality Code = "UNKNOWN_MODALITY"
	ErrCodeUnknownTool     Code = "UNKNOWN_TOOL"

	// Picker coordinates
	ErrCodeOutOfRange Code = "OUT_OF_RANGE"

	// Fixture and configuration validation
	ErrCodeDuplicateStudy   Code = "DUPLICATE_STUDY"
	ErrCodeInvalidCatalogue Code = "INVALID_CATALOGUE"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err, or any error it wraps or joins, carries code.
func Is(err error, code Code) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) && e.Code == code {
		return true
	}
	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range x.Unwrap() {
			if Is(inner, code) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Is(x.Unwrap(), code)
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns an empty Code if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Message returns the human-readable message of a coded error, falling back
// to err.Error() for anything else. Used for status-bar text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
