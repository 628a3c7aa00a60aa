package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/orbitplot/internal/trajectory"
)

// ParseSelection resolves a body selection against n bodies. Accepted forms
// are "all" (or empty), a half-open slice "lo:hi" with either bound optional
// and clamped to n, and a comma-separated index list "0,2,3".
func ParseSelection(spec string, n int) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "all" {
		return rangeIndices(0, n), nil
	}

	if lo, hi, ok := strings.Cut(spec, ":"); ok {
		start, err := sliceBound(lo, 0)
		if err != nil {
			return nil, err
		}
		end, err := sliceBound(hi, n)
		if err != nil {
			return nil, err
		}
		start, end = clamp(start, n), clamp(end, n)
		if end < start {
			end = start
		}
		return rangeIndices(start, end), nil
	}

	parts := strings.Split(spec, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadSelection, spec)
		}
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: %d (run has %d bodies)", trajectory.ErrBadSelection, i, n)
		}
		out = append(out, i)
	}
	return out, nil
}

func sliceBound(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadSelection, s)
	}
	return v, nil
}

// clamp applies Python-style slice bounds: negatives count from the end.
func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func rangeIndices(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

// Axes is the pair of coordinate axes drawn horizontally and vertically.
type Axes [2]int

var axisNames = [3]string{"x", "y", "z"}

func ParseAxes(s string) (Axes, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xy":
		return Axes{trajectory.X, trajectory.Y}, nil
	case "xz":
		return Axes{trajectory.X, trajectory.Z}, nil
	case "yz":
		return Axes{trajectory.Y, trajectory.Z}, nil
	}
	return Axes{}, fmt.Errorf("%w: %q", ErrUnknownAxes, s)
}

func (a Axes) String() string { return axisNames[a[0]] + axisNames[a[1]] }

// Labels returns the horizontal and vertical axis names.
func (a Axes) Labels() (string, string) { return axisNames[a[0]], axisNames[a[1]] }
