package orbit

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// G is the gravitational constant in m³ kg⁻¹ s⁻².
const G = 6.6743e-11

type Body struct {
	Name     string
	Mass     float64
	Massive  bool
	Fixed    bool
	Position r3.Vec
	Velocity r3.Vec

	acc  r3.Vec
	prev r3.Vec
}

// Engine integrates a set of bodies over a fixed time span.
type Engine struct {
	bodies      []*Body
	span        float64
	dt          float64
	integration Integration

	times  []float64
	tracks [][]r3.Vec
}

// New copies bodies into a fresh engine. Fixed bodies start at rest.
func New(span, dt float64, integration Integration, bodies []Body) (*Engine, error) {
	if span < 0 {
		return nil, ErrTimeSpan
	}
	if span < dt || dt <= 0 {
		return nil, ErrTimeResolution
	}

	e := &Engine{
		span:        span,
		dt:          dt,
		integration: integration,
		bodies:      make([]*Body, len(bodies)),
		tracks:      make([][]r3.Vec, len(bodies)),
		times:       []float64{0},
	}
	for i := range bodies {
		b := bodies[i]
		if b.Name == "" {
			b.Name = fmt.Sprintf("Object%d", i+1)
		}
		if b.Fixed {
			b.Velocity = r3.Vec{}
		}
		e.bodies[i] = &b
		e.tracks[i] = []r3.Vec{b.Position}
	}
	return e, nil
}

func (e *Engine) Bodies() []Body {
	out := make([]Body, len(e.bodies))
	for i, b := range e.bodies {
		out[i] = *b
	}
	return out
}

func (e *Engine) Samples() int { return len(e.times) }

// Track returns the recorded positions of body i.
func (e *Engine) Track(i int) []r3.Vec { return e.tracks[i] }

// Run steps from t = dt while t <= span. progress, when non-nil, receives
// the completed fraction after every step.
func (e *Engine) Run(ctx context.Context, progress func(float64)) error {
	steps := int(math.Floor(e.span/e.dt + 1e-9))

	for k := 1; k <= steps; k++ {
		select {
		case <-ctx.Done():
			return ErrContextCanceled
		default:
		}

		t := float64(k) * e.dt
		e.step(k == 1)
		e.times = append(e.times, t)
		for i, b := range e.bodies {
			e.tracks[i] = append(e.tracks[i], b.Position)
		}

		if progress != nil {
			progress(t / e.span)
		}
	}
	return nil
}

func (e *Engine) step(first bool) {
	for _, b := range e.bodies {
		b.acc = e.accelerationOn(b)
	}

	next := make([]r3.Vec, len(e.bodies))
	for i, b := range e.bodies {
		switch {
		case b.Fixed:
			next[i] = b.Position
		case b.Mass == 0:
			next[i] = r3.Add(b.Position, r3.Scale(e.dt, b.Velocity))
		default:
			next[i] = e.integration.advance(b, e.dt, first)
		}
	}

	for i, b := range e.bodies {
		b.prev = b.Position
		b.Position = next[i]
	}
}

func (e *Engine) accelerationOn(b *Body) r3.Vec {
	var acc r3.Vec
	for _, other := range e.bodies {
		if other == b || !other.Massive {
			continue
		}
		d := r3.Sub(other.Position, b.Position)
		r2 := r3.Norm2(d)
		if r2 == 0 {
			continue
		}
		acc = r3.Add(acc, r3.Scale(G*other.Mass/(r2*math.Sqrt(r2)), d))
	}
	return acc
}

// Energy returns the total kinetic and gravitational potential energy of the
// current state.
func (e *Engine) Energy() (kinetic, potential float64) {
	for i, b := range e.bodies {
		kinetic += 0.5 * b.Mass * r3.Norm2(b.Velocity)
		if !b.Massive {
			continue
		}
		for _, other := range e.bodies[i+1:] {
			if !other.Massive {
				continue
			}
			r := r3.Norm(r3.Sub(other.Position, b.Position))
			if r > 0 {
				potential -= G * b.Mass * other.Mass / r
			}
		}
	}
	return kinetic, potential
}

// WriteTo writes the run with an eight-line header followed by one line per
// time sample: t, then x, y, z of every body.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	fmt.Fprintf(cw, "Simulation Run Results\n\n")
	fmt.Fprintf(cw, "time span (s): %s\n", formatFloat(e.span))
	fmt.Fprintf(cw, "time resolution (s): %s\n", formatFloat(e.dt))
	fmt.Fprintf(cw, "=> number of time samples: %d\n\n", len(e.times))

	fmt.Fprint(cw, "time (s)")
	for _, b := range e.bodies {
		fmt.Fprintf(cw, ",%[1]s X (m),%[1]s Y (m),%[1]s Z (m)", b.Name)
	}
	fmt.Fprint(cw, "\n\n")

	row := make([]byte, 0, 64*(1+3*len(e.bodies)))
	for k, t := range e.times {
		row = strconv.AppendFloat(row[:0], t, 'g', -1, 64)
		for i := range e.bodies {
			p := e.tracks[i][k]
			for _, c := range [3]float64{p.X, p.Y, p.Z} {
				row = append(row, ',')
				row = strconv.AppendFloat(row, c, 'g', -1, 64)
			}
		}
		row = append(row, '\n')
		cw.Write(row)
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
