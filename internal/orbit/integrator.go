package orbit

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

type Integration int

const (
	BruteForce Integration = iota
	Leapfrog
	Verlet
)

var integrationNames = map[Integration]string{
	BruteForce: "bruteforce",
	Leapfrog:   "leapfrog",
	Verlet:     "verlet",
}

func (i Integration) String() string {
	if name, ok := integrationNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Integration(%d)", int(i))
}

// ParseIntegration is case-insensitive.
func ParseIntegration(s string) (Integration, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range integrationNames {
		if name == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIntegrator, s)
}

// taylor advances x by x + v dt + a dt²/2.
func taylor(x, v, a r3.Vec, dt float64) r3.Vec {
	return r3.Add(x, r3.Add(r3.Scale(dt, v), r3.Scale(0.5*dt*dt, a)))
}

// advance computes b's next position from its current acceleration and
// updates its velocity where the scheme carries one.
func (i Integration) advance(b *Body, dt float64, first bool) r3.Vec {
	switch i {
	case Leapfrog:
		if first {
			// Position and velocity start in sync; offset the velocity by half a step.
			next := taylor(b.Position, b.Velocity, b.acc, dt)
			b.Velocity = r3.Add(b.Velocity, r3.Scale(dt/2, b.acc))
			return next
		}
		b.Velocity = r3.Add(b.Velocity, r3.Scale(dt, b.acc))
		return r3.Add(b.Position, r3.Scale(dt, b.Velocity))

	case Verlet:
		var next r3.Vec
		if first {
			next = taylor(b.Position, b.Velocity, b.acc, dt)
		} else {
			next = r3.Add(r3.Sub(r3.Scale(2, b.Position), b.prev), r3.Scale(dt*dt, b.acc))
		}
		b.Velocity = r3.Scale(1/dt, r3.Sub(next, b.Position))
		return next

	default:
		next := taylor(b.Position, b.Velocity, b.acc, dt)
		b.Velocity = r3.Add(b.Velocity, r3.Scale(dt, b.acc))
		return next
	}
}
