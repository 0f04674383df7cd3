// Package serrors implements semantic errors. Every error carries a category
// Kind (not found, conflict, forbidden, ...) that transports map to status
// codes, and optionally a more specific reason Kind that names the exact
// business rule that failed (for example PUBLICATION_UNDER_REVIEW).
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the provided name. Kinds are
// comparable and work with errors.Is through the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Category kinds.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the current state does not allow the operation.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates a dependency is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error is a semantic error with a category kind, an optional reason kind, an
// optional wrapped cause and an optional message.
//
// errors.Is(err, target) matches the category, the reason or anything in the
// wrapped chain, so callers can test either `serrors.ErrConflict` or a
// specific reason such as `moderation.ErrIncidenceAppealed`.
//
// Error string: "<msg>: <err>", "<msg>", "<err>", then the reason name and
// finally the category name, whichever is the first available.
type Error struct {
	kind   Kind
	reason Kind
	err    error
	msg    string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind that wraps err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// WithReason constructs a semantic error with a category and a specific reason.
func WithReason(k Kind, reason Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, reason: reason, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.reason != nil:
		return e.reason.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches the category kind, the reason kind or the wrapped chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.reason != nil && errors.Is(e.reason, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As extracts the category kind or something from the wrapped chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the category kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Reason returns the specific reason kind, or nil.
func (e *Error) Reason() Kind { return e.reason }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// From returns the outermost *Error in err's chain. A bare Kind is promoted to
// an *Error of that kind. It returns nil when err carries no semantics.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var k Kind
	if errors.As(err, &k) {
		return KindOnly(k)
	}

	return nil
}

// Code returns the stable machine-readable code for err: the reason name if
// present, else the category name, else INTERNAL.
func Code(err error) string {
	e := From(err)
	switch {
	case e == nil:
		return ErrInternal.Error()
	case e.reason != nil:
		return e.reason.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return ErrInternal.Error()
	}
}
