package adapter

import "errors"

// Transport errors for non-2xx responses that carry no decode error kind.
var (
	ErrEmptyAddress        = errors.New("adapter address is empty")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("service unavailable")
)

// RemoteError is a failure reported by the server. Message is the server's
// text; Kind is the sentinel it maps to and is what errors.Is matches.
type RemoteError struct {
	Kind    error
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}
