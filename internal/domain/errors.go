package domain

import "errors"

// Sentinel errors used by the relay. Handlers translate these, together
// with the pushover package errors, to HTTP status codes via mapError.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNoRecipient      = errors.New("no recipient: set user or configure PUSHOVER_USER")
	ErrUpstreamRejected = errors.New("pushover API rejected the message")
)
