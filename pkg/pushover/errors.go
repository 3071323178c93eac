package pushover

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by setters, Validate and Submit.
// Callers match them with errors.Is; Submit wraps them in a *SubmitError.
var (
	ErrEmptyURI           = errors.New("uri must not be empty")
	ErrInvalidURI         = errors.New("uri must be an absolute http or https URL")
	ErrEmptyToken         = errors.New("token must not be empty")
	ErrEmptyField         = errors.New("field value must not be empty")
	ErrMissingURI         = errors.New("endpoint has no uri")
	ErrMissingToken       = errors.New("endpoint has no token")
	ErrMissingDestination = errors.New("message has no destination")
	ErrMissingBody        = errors.New("message has no body")
	ErrInvalidPriority    = errors.New("invalid priority: must be between -2 and 2")
	ErrEncoding           = errors.New("percent-encoding failed")
	ErrTransport          = errors.New("transport failed")
)

// Stage names the step of a submission at which it stopped.
type Stage string

const (
	StageIdle         Stage = "idle"
	StageValidating   Stage = "validating"
	StageEncoding     Stage = "encoding"
	StageTransmitting Stage = "transmitting"
	StageDone         Stage = "done"
)

// SubmitError reports why Submit failed. StatusCode is set only when the
// endpoint answered with a non-2xx status.
type SubmitError struct {
	Stage      Stage
	StatusCode int
	Err        error
}

func (e *SubmitError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pushover: %s: %v (status %d)", e.Stage, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("pushover: %s: %v", e.Stage, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// StageOf returns the stage recorded in err, or StageDone when err is nil.
func StageOf(err error) Stage {
	if err == nil {
		return StageDone
	}
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Stage
	}
	return StageIdle
}
