package domain

import "errors"

// ErrNetwork covers transport-level failures (DNS, refused connection,
// timeout). The original cause is deliberately discarded; callers only ever
// show the fixed message.
var ErrNetwork = errors.New("Network error. Please check your connection.")

// APIError is a backend-reported failure: a non-2xx status or an explicit
// success=false envelope. Message is surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
