package gme

import "errors"

// Domain errors for derivation construction.
var (
	// ErrUnknownFlowModel indicates a flow-model variant outside the
	// supported set.
	ErrUnknownFlowModel = errors.New("gme: unknown flow model")

	// ErrUnknownTiltModel indicates a tilt-model variant outside the
	// supported set.
	ErrUnknownTiltModel = errors.New("gme: unknown tilt model")

	// ErrUnknownProfile indicates an initial-profile variant outside the
	// supported set.
	ErrUnknownProfile = errors.New("gme: unknown initial profile")

	// ErrBadExponent indicates a missing or non-positive model exponent.
	ErrBadExponent = errors.New("gme: model exponent must be a positive rational")
)

// StageError wraps an error with the derivation stage it occurred in.
type StageError struct {
	Stage   string
	Wrapped error
}

func (e *StageError) Error() string {
	return "gme: stage " + e.Stage + ": " + e.Wrapped.Error()
}

func (e *StageError) Unwrap() error {
	return e.Wrapped
}
