// Package apperr carries the error kinds the API surfaces. Services return
// these; the HTTP layer maps kinds onto status codes.
package apperr

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalid
	KindUnauthorized
	KindConflict
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error      { return &Error{Kind: KindNotFound, Msg: msg} }
func AlreadyExists(msg string) error { return &Error{Kind: KindAlreadyExists, Msg: msg} }
func Invalid(msg string) error       { return &Error{Kind: KindInvalid, Msg: msg} }
func Unauthorized(msg string) error  { return &Error{Kind: KindUnauthorized, Msg: msg} }

// Conflict marks a store-level constraint violation that slipped past the
// precondition checks. User-visible outcome matches AlreadyExists.
func Conflict(msg string, err error) error {
	return &Error{Kind: KindConflict, Msg: msg, Err: err}
}

func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf reports the kind of err, defaulting to KindInternal for
// anything that did not come out of this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, k Kind) bool { return err != nil && KindOf(err) == k }
