package viz

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitplot/internal/trajectory"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Yellow, asciigraph.Red, asciigraph.Green, asciigraph.Blue,
	asciigraph.Magenta, asciigraph.Cyan, asciigraph.White,
}

// BodyStats summarises one body's distance from the origin.
type BodyStats struct {
	Name    string
	MinDist float64
	MaxDist float64
	Final   [3]float64
}

func Stats(run *trajectory.Grouped) []BodyStats {
	out := make([]BodyStats, run.Bodies())
	last := run.Steps() - 1
	for b := range out {
		s := BodyStats{Name: run.Names[b], MinDist: math.Inf(1), MaxDist: math.Inf(-1)}
		for _, d := range run.Distance(b) {
			if math.IsNaN(d) {
				continue
			}
			s.MinDist = math.Min(s.MinDist, d)
			s.MaxDist = math.Max(s.MaxDist, d)
		}
		if last >= 0 {
			for a := 0; a < 3; a++ {
				s.Final[a] = run.At(b, a, last)
			}
		}
		out[b] = s
	}
	return out
}

// Summary writes a body table and a chart of distance from the origin over
// time. run is expected to be scaled to display units already.
func Summary(w io.Writer, run *trajectory.Grouped, unit string) error {
	fmt.Fprintf(w, "samples: %d\n", run.Steps())
	fmt.Fprintf(w, "duration: %g s\n", run.Duration())
	fmt.Fprintf(w, "bodies: %d\n\n", run.Bodies())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tNAME\tMIN DIST (%[1]s)\tMAX DIST (%[1]s)\tFINAL X\tFINAL Y\tFINAL Z\n", unit)
	for i, s := range Stats(run) {
		fmt.Fprintf(tw, "%d\t%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\n", i, s.Name, s.MinDist, s.MaxDist, s.Final[0], s.Final[1], s.Final[2])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if run.Bodies() == 0 || run.Steps() < 2 {
		return nil
	}

	series := make([][]float64, 0, run.Bodies())
	colors := make([]asciigraph.AnsiColor, 0, run.Bodies())
	for b := 0; b < run.Bodies(); b++ {
		series = append(series, run.Distance(b))
		colors = append(colors, seriesColors[b%len(seriesColors)])
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("distance from origin (%s) vs sample", unit)),
	)
	fmt.Fprintf(w, "\n%s\n", graph)
	return nil
}
