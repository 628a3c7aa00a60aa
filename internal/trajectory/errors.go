package trajectory

import "errors"

var (
	// ErrNoBodies indicates a grouped run without any body to draw.
	ErrNoBodies = errors.New("trajectory: no bodies in run")

	// ErrBadSelection indicates a body index outside the run.
	ErrBadSelection = errors.New("trajectory: body index out of range")
)
