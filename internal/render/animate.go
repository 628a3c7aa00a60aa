package render

import (
	"context"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitplot/internal/trajectory"
)

// BodyFrame is one body's marker and trail in a frame.
type BodyFrame struct {
	Name    string
	Current r2.Vec
	Trail   []r2.Vec
}

type Frame struct {
	Index  int
	Total  int
	Time   float64
	Bodies []BodyFrame
}

// Sink consumes rendered frames.
type Sink interface {
	WriteFrame(f Frame) error
}

// TrailSize returns floor(fraction * frames).
func TrailSize(frames int, fraction float64) int {
	if fraction <= 0 {
		return 0
	}
	return int(math.Floor(fraction * float64(frames)))
}

// TrailWindow returns the half-open index range [max(0, t-size), t).
func TrailWindow(t, size int) (start, end int) {
	start = t - size
	if start < 0 {
		start = 0
	}
	return start, t
}

type Animator struct {
	run       *trajectory.Grouped
	axes      Axes
	trailSize int
	stride    int
}

// NewAnimator prepares an animation over every timestep of run. A stride
// above one renders every stride-th frame.
func NewAnimator(run *trajectory.Grouped, axes Axes, trailFraction float64, stride int) *Animator {
	if stride < 1 {
		stride = 1
	}
	return &Animator{
		run:       run,
		axes:      axes,
		trailSize: TrailSize(run.Steps(), trailFraction),
		stride:    stride,
	}
}

// Frames returns the number of timesteps T.
func (a *Animator) Frames() int { return a.run.Steps() }

func (a *Animator) TrailSize() int { return a.trailSize }

// Stride is the number of timesteps between rendered frames.
func (a *Animator) Stride() int { return a.stride }

func (a *Animator) Axes() Axes { return a.axes }

func (a *Animator) Run() *trajectory.Grouped { return a.run }

// Frame builds the state for timestep t.
func (a *Animator) Frame(t int) Frame {
	h, v := a.axes[0], a.axes[1]
	start, end := TrailWindow(t, a.trailSize)

	f := Frame{
		Index:  t,
		Total:  a.Frames(),
		Bodies: make([]BodyFrame, a.run.Bodies()),
	}
	if t < len(a.run.Times) {
		f.Time = a.run.Times[t]
	}

	for b := range f.Bodies {
		xs, ys := a.run.Data[b][h], a.run.Data[b][v]
		trail := make([]r2.Vec, 0, end-start)
		for i := start; i < end; i++ {
			trail = append(trail, r2.Vec{X: xs[i], Y: ys[i]})
		}
		f.Bodies[b] = BodyFrame{
			Name:    a.run.Names[b],
			Current: r2.Vec{X: xs[t], Y: ys[t]},
			Trail:   trail,
		}
	}
	return f
}

// Play drives every frame into sink in order, writing a progress line to
// progress (if non-nil) before each one.
func (a *Animator) Play(ctx context.Context, sink Sink, progress io.Writer) error {
	total := a.Frames()
	for t := 0; t < total; t += a.stride {
		select {
		case <-ctx.Done():
			return ErrContextCanceled
		default:
		}

		if progress != nil {
			fmt.Fprint(progress, ProgressLine(Progress(t, total)))
		}
		if err := sink.WriteFrame(a.Frame(t)); err != nil {
			return fmt.Errorf("frame %d: %w", t, err)
		}
	}
	if progress != nil {
		fmt.Fprintln(progress, ProgressLine(100))
	}
	return nil
}
