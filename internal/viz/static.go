package viz

import (
	"github.com/san-kum/orbitplot/internal/render"
	"github.com/san-kum/orbitplot/internal/trajectory"
)

// Plot draws every body's full path on a w x h cell Braille canvas spanning
// [-limit, limit] on both axes.
func Plot(run *trajectory.Grouped, axes render.Axes, limit float64, w, h int) *Canvas {
	c := NewCanvas(w, h)
	view := NewViewport(c, limit)

	for b := 0; b < run.Bodies(); b++ {
		xs, ys := run.Data[b][axes[0]], run.Data[b][axes[1]]
		px, py, havePrev := 0, 0, false
		for t := range xs {
			x, y, ok := view.Project(xs[t], ys[t])
			if !ok {
				havePrev = false
				continue
			}
			if havePrev {
				c.DrawLine(px, py, x, y)
			} else {
				c.Set(x, y)
			}
			px, py, havePrev = x, y, true
		}
	}
	return c
}
