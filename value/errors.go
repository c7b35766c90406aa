package value

import (
	"errors"
	"fmt"
)

// ConvError represents a failed text conversion.
//
// Conversion errors fall into four categories:
//   - Parse failure: the text is not a valid lexical form of the target type
//   - Null value: a null cell was converted to a type with no null domain
//   - Not null: a present cell was converted to the always-null Nothing type
//   - No codec: the target type has no registered or derivable codec
type ConvError struct {
	// Code identifies the error category.
	Code ConvErrorCode

	// Type is the Go name of the conversion target type.
	Type string

	// Input is the offending text, when the error concerns input text.
	Input string

	// Err is the underlying parse error, if any.
	Err error
}

// ConvErrorCode categorizes conversion errors.
type ConvErrorCode string

const (
	// ErrCodeParseFailed indicates the text is not valid for the target type.
	ErrCodeParseFailed ConvErrorCode = "PARSE_FAILED"

	// ErrCodeNullValue indicates a null cell was converted to a type
	// without a null representation.
	ErrCodeNullValue ConvErrorCode = "NULL_VALUE"

	// ErrCodeNotNull indicates a non-null cell was converted to Nothing.
	ErrCodeNotNull ConvErrorCode = "NOT_NULL"

	// ErrCodeNoCodec indicates no codec exists for the target type.
	ErrCodeNoCodec ConvErrorCode = "NO_CODEC"
)

// Error implements the error interface.
func (e *ConvError) Error() string {
	switch e.Code {
	case ErrCodeParseFailed:
		if e.Err != nil {
			return fmt.Sprintf("%s: cannot parse %q as %s: %v", e.Code, e.Input, e.Type, e.Err)
		}
		return fmt.Sprintf("%s: cannot parse %q as %s", e.Code, e.Input, e.Type)
	case ErrCodeNullValue:
		return fmt.Sprintf("%s: conversion of null value to %s, which has no null representation", e.Code, e.Type)
	case ErrCodeNotNull:
		return fmt.Sprintf("%s: conversion of non-null value %q to %s", e.Code, e.Input, e.Type)
	default:
		return fmt.Sprintf("%s: no conversion to %s", e.Code, e.Type)
	}
}

// Unwrap returns the underlying parse error, if any.
func (e *ConvError) Unwrap() error {
	return e.Err
}

// IsParseError returns true if the error is a parse failure.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var ce *ConvError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeParseFailed
	}
	return false
}

// IsNullError returns true if the error reports a null cell converted to a
// type without a null domain.
func IsNullError(err error) bool {
	var ce *ConvError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeNullValue
	}
	return false
}

// IsNotNullError returns true if the error is the Nothing misuse trap.
func IsNotNullError(err error) bool {
	var ce *ConvError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeNotNull
	}
	return false
}

// NewParseError creates a ConvError for text that failed to parse as typ.
func NewParseError(typ string, input []byte, err error) *ConvError {
	return &ConvError{
		Code:  ErrCodeParseFailed,
		Type:  typ,
		Input: string(input),
		Err:   err,
	}
}

// NewNullError creates a ConvError for a null-to-typ conversion.
func NewNullError(typ string) *ConvError {
	return &ConvError{Code: ErrCodeNullValue, Type: typ}
}
