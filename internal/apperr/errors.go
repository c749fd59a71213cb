// Package apperr defines the closed set of persistence-layer failure kinds
// that repositories hand to services. Raw driver errors never cross the
// repository boundary: they are classified into one of these kinds first.
//
// Callers dispatch on Kind (via KindOf, Is, or errors.Is against the exported
// sentinels), never on the message text.
package apperr

import "errors"

// Kind is the discriminant of a classified error.
type Kind string

const (
	KindUnexpected      Kind = "UNEXPECTED"
	KindValidation      Kind = "VALIDATION"
	KindNotFound        Kind = "NOT_FOUND"
	KindStateConflict   Kind = "STATE_CONFLICT"
	KindUnaffected      Kind = "UNAFFECTED"
	KindUniqueViolation Kind = "UNIQUE_VIOLATION"
	KindFKViolation     Kind = "FK_VIOLATION"
)

// Sentinels usable with errors.Is. Matching is by Kind only.
var (
	ErrUnexpected      = &Error{Kind: KindUnexpected}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrStateConflict   = &Error{Kind: KindStateConflict}
	ErrUnaffected      = &Error{Kind: KindUnaffected}
	ErrUniqueViolation = &Error{Kind: KindUniqueViolation}
	ErrFKViolation     = &Error{Kind: KindFKViolation}
)

// Error is a classified failure. Detail is an optional human-readable note
// (for Unexpected it carries the original driver message). Refs lists the
// referenced ids a FKViolation could not resolve, when they are known.
type Error struct {
	Kind   Kind
	Detail string
	Refs   []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Detail
}

// Is reports kind equality so errors.Is(err, apperr.ErrNotFound) works for
// any NotFound error regardless of its detail.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(k Kind, detail []string) *Error {
	e := &Error{Kind: k}
	if len(detail) > 0 {
		e.Detail = detail[0]
	}
	return e
}

func NotFound(detail ...string) *Error        { return newErr(KindNotFound, detail) }
func UniqueViolation(detail ...string) *Error { return newErr(KindUniqueViolation, detail) }
func FKViolation(detail ...string) *Error     { return newErr(KindFKViolation, detail) }
func StateConflict(detail ...string) *Error   { return newErr(KindStateConflict, detail) }
func Unaffected(detail ...string) *Error      { return newErr(KindUnaffected, detail) }
func Validation(detail ...string) *Error      { return newErr(KindValidation, detail) }

// MissingRefs is a FKViolation naming the referenced ids that do not exist.
func MissingRefs(detail string, ids []string) *Error {
	return &Error{Kind: KindFKViolation, Detail: detail, Refs: ids}
}

// RefsOf returns the unresolved ids carried by err, if any.
func RefsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Refs
	}
	return nil
}

// Unexpected wraps the message of an unclassifiable failure.
func Unexpected(msg string) *Error { return &Error{Kind: KindUnexpected, Detail: msg} }

// KindOf returns the kind of err, unwrapping as needed. Errors that are not
// classified report KindUnexpected; nil reports "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// Is reports whether err is classified as k.
func Is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
