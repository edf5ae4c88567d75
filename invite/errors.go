// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package invite

import (
	"errors"
	"fmt"
)

// ErrorType classifies the failures the widget knows how to absorb.
type ErrorType int

const (
	// ErrorTypeUnknown unclassified failure.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeLocationNotFound the place name is not in the table.
	ErrorTypeLocationNotFound
	// ErrorTypeDataSourceUnavailable the invite list could not be read.
	ErrorTypeDataSourceUnavailable
	// ErrorTypePersistenceReadCorrupt stored acknowledgment state is invalid.
	ErrorTypePersistenceReadCorrupt
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeLocationNotFound:
		return "location not found"
	case ErrorTypeDataSourceUnavailable:
		return "data source unavailable"
	case ErrorTypePersistenceReadCorrupt:
		return "persistence read corrupt"
	default:
		return "unknown"
	}
}

// Error carries an ErrorType alongside the underlying cause.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an *Error of the given type.
func NewError(t ErrorType, message string, err error) *Error {
	return &Error{Type: t, Message: message, Err: err}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}

	return false
}

// IsLocationNotFound reports whether a place name failed to resolve.
func IsLocationNotFound(err error) bool {
	return isType(err, ErrorTypeLocationNotFound)
}

// IsDataSourceUnavailable reports whether loading the invite list failed.
func IsDataSourceUnavailable(err error) bool {
	return isType(err, ErrorTypeDataSourceUnavailable)
}

// IsPersistenceReadCorrupt reports whether stored state could not be decoded.
func IsPersistenceReadCorrupt(err error) bool {
	return isType(err, ErrorTypePersistenceReadCorrupt)
}
