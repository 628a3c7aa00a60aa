package trajectory

import (
	"fmt"
	"math"
)

// Axis indices into Grouped.Data[body].
const (
	X = iota
	Y
	Z
)

// Grouped is a run reshaped to [body][axis][timestep].
type Grouped struct {
	Times []float64
	Data  [][3][]float64
	Names []string
}

// Group regroups a table whose row 0 is time and rows 1..3N hold the
// interleaved x, y, z coordinates of N bodies. Rows past the last complete
// triple are ignored.
func Group(t Table) *Grouped {
	g := &Grouped{}
	if t.Rows() == 0 {
		return g
	}

	g.Times = t[0]
	n := (t.Rows() - 1) / 3
	g.Data = make([][3][]float64, n)

	for row := 1; row <= 3*n; row++ {
		body := (row - 1) / 3
		axis := (row - 1) % 3
		series := make([]float64, len(t[row]))
		copy(series, t[row])
		g.Data[body][axis] = series
	}

	g.Names = defaultNames(n)
	return g
}

func defaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("body%d", i)
	}
	return names
}

// Open loads a run file and groups it, naming bodies from the header when
// the header carries a column line.
func Open(path string, headerLines int) (*Grouped, error) {
	f, err := Load(path, headerLines)
	if err != nil {
		return nil, err
	}
	g := Group(f.Table)
	g.SetNames(BodyNames(f.Header))
	return g, nil
}

// SetNames replaces body names. Missing or empty names keep their default.
func (g *Grouped) SetNames(names []string) {
	for i := range g.Names {
		if i < len(names) && names[i] != "" {
			g.Names[i] = names[i]
		}
	}
}

func (g *Grouped) Bodies() int { return len(g.Data) }

// Steps returns the number of timesteps T.
func (g *Grouped) Steps() int {
	if len(g.Data) == 0 {
		return len(g.Times)
	}
	return len(g.Data[0][X])
}

// Shape returns [N, 3, T].
func (g *Grouped) Shape() [3]int {
	return [3]int{g.Bodies(), 3, g.Steps()}
}

func (g *Grouped) At(body, axis, t int) float64 {
	return g.Data[body][axis][t]
}

// Scaled returns a copy with every coordinate divided by divisor. Times are
// shared with the receiver.
func (g *Grouped) Scaled(divisor float64) *Grouped {
	out := &Grouped{
		Times: g.Times,
		Data:  make([][3][]float64, len(g.Data)),
		Names: append([]string(nil), g.Names...),
	}
	for b := range g.Data {
		for a := 0; a < 3; a++ {
			src := g.Data[b][a]
			dst := make([]float64, len(src))
			for i, v := range src {
				dst[i] = v / divisor
			}
			out.Data[b][a] = dst
		}
	}
	return out
}

// Select returns a run restricted to the given body indices, in order.
func (g *Grouped) Select(indices []int) (*Grouped, error) {
	out := &Grouped{
		Times: g.Times,
		Data:  make([][3][]float64, 0, len(indices)),
		Names: make([]string, 0, len(indices)),
	}
	for _, i := range indices {
		if i < 0 || i >= g.Bodies() {
			return nil, fmt.Errorf("%w: %d (run has %d bodies)", ErrBadSelection, i, g.Bodies())
		}
		out.Data = append(out.Data, g.Data[i])
		out.Names = append(out.Names, g.Names[i])
	}
	return out, nil
}

// Distance returns a body's distance from the origin at every timestep.
func (g *Grouped) Distance(body int) []float64 {
	d := g.Data[body]
	out := make([]float64, len(d[X]))
	for t := range out {
		out[t] = math.Sqrt(d[X][t]*d[X][t] + d[Y][t]*d[Y][t] + d[Z][t]*d[Z][t])
	}
	return out
}

// Duration returns the time covered by the run.
func (g *Grouped) Duration() float64 {
	if len(g.Times) == 0 {
		return 0
	}
	return g.Times[len(g.Times)-1] - g.Times[0]
}
