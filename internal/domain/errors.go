package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable machine-readable failure category exposed to callers.
type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindConflict       ErrorKind = "conflict"
	KindValidation     ErrorKind = "validation"
	KindUnauthorized   ErrorKind = "unauthorized"
	KindInfrastructure ErrorKind = "infrastructure"
)

// ErrInvalidCredentials is returned for any login failure so callers cannot
// distinguish a bad password from an unknown or disabled account.
var ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "invalid username or password"}

// Error pairs a failure kind with a human-readable message. Infrastructure
// errors additionally wrap the underlying cause, which is logged but never
// exposed to API clients.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Infrastructure wraps a low-level failure (connection, timeout, rollback).
func Infrastructure(err error) error {
	return &Error{Kind: KindInfrastructure, Message: "internal error", Err: err}
}

// KindOf reports the kind of err, defaulting to KindInfrastructure for
// anything outside the taxonomy.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInfrastructure
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }

// MessageOf returns the client-safe message for err. Infrastructure causes
// are suppressed.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		if de.Kind == KindInfrastructure {
			return "internal error"
		}
		return de.Message
	}
	return "internal error"
}
