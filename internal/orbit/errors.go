package orbit

import "errors"

var (
	// ErrTimeSpan indicates a negative simulated time span.
	ErrTimeSpan = errors.New("orbit: time span must be greater than zero")

	// ErrTimeResolution indicates a time span shorter than one step.
	ErrTimeResolution = errors.New("orbit: time span must be greater than the time resolution")

	// ErrUnknownIntegrator indicates an integration name that is not supported.
	ErrUnknownIntegrator = errors.New("orbit: unknown integration type")

	// ErrUnknownPreset indicates a preset name that is not built in.
	ErrUnknownPreset = errors.New("orbit: unknown preset")

	// ErrContextCanceled indicates the run was interrupted.
	ErrContextCanceled = errors.New("orbit: simulation canceled by context")
)
