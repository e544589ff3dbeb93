// Package errs defines the error kinds dispatch operations report to their callers.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindExternalService Kind = "external_service"
	KindValidation      Kind = "validation"
	KindState           Kind = "state"
	KindInternal        Kind = "internal"
)

// Error carries a Kind through wrapping. Compare with errors.Is against the sentinels below.
type Error struct {
	Kind      Kind
	Op        string
	Msg       string
	Err       error
	Retryable bool
}

var (
	NotFound        = &Error{Kind: KindNotFound}
	ExternalService = &Error{Kind: KindExternalService}
	Validation      = &Error{Kind: KindValidation}
	State           = &Error{Kind: KindState}
)

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches a bare sentinel by kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op == "" && t.Msg == "" && t.Err == nil {
		return e.Kind == t.Kind
	}
	return e == t
}

func NotFoundf(op, format string, args ...any) error {
	return &Error{Kind: KindNotFound, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func Validationf(op, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func Statef(op, format string, args ...any) error {
	return &Error{Kind: KindState, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// External wraps a vendor failure. Transport errors, 5xx and 429 should be retryable.
func External(op string, err error, retryable bool) error {
	return &Error{Kind: KindExternalService, Op: op, Err: err, Retryable: retryable}
}

func Externalf(op string, retryable bool, format string, args ...any) error {
	return &Error{Kind: KindExternalService, Op: op, Msg: fmt.Sprintf(format, args...), Retryable: retryable}
}

// KindOf returns the kind of the first *Error in the chain, KindInternal for foreign errors
// and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable
	}
	return false
}
