package render

import "errors"

var (
	// ErrBadSelection indicates a body selection that cannot be parsed.
	ErrBadSelection = errors.New("render: invalid body selection")

	// ErrUnknownAxes indicates an axis pair other than xy, xz or yz.
	ErrUnknownAxes = errors.New("render: unknown axis pair")

	// ErrUnknownFormat indicates a plot format gonum/plot cannot write.
	ErrUnknownFormat = errors.New("render: unknown plot format")

	// ErrContextCanceled indicates an animation stopped before its last frame.
	ErrContextCanceled = errors.New("render: animation canceled by context")
)
