package urlstub

import "errors"

var (
	// ErrNoResponse is returned by Transport when loading finished without a
	// response or a failure.
	ErrNoResponse = errors.New("request finished without a response")

	// ErrNoProtocol is returned when no registered Protocol claims a request
	// and the Transport has no base RoundTripper.
	ErrNoProtocol = errors.New("no protocol claimed the request")

	// ErrInvalidPayload wraps failures while decoding a host call payload.
	ErrInvalidPayload = errors.New("host call payload is invalid")

	// ErrUnexpectedNamespace is returned when a host call targets a namespace
	// other than the configured one.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrInvalidOutcome wraps failures while loading an Outcome document.
	ErrInvalidOutcome = errors.New("outcome document is invalid")
)
