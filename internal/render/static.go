package render

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/orbitplot/internal/trajectory"
)

var trailColor = color.Gray{Y: 128}

type StaticOptions struct {
	Title string
	Unit  string
	// Limit fixes both axes to [-Limit, Limit]. Zero lets the plot fit the data.
	Limit float64
}

// Static draws each body of run as a line in the given axis plane.
func Static(run *trajectory.Grouped, axes Axes, opts StaticOptions) (*plot.Plot, error) {
	if run.Bodies() == 0 {
		return nil, trajectory.ErrNoBodies
	}

	p := plot.New()
	p.Title.Text = opts.Title
	setLabels(p, axes, opts.Unit)
	p.Add(plotter.NewGrid())

	for b := 0; b < run.Bodies(); b++ {
		pts := finiteXYs(run.Data[b][axes[0]], run.Data[b][axes[1]])
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", run.Names[b], err)
		}
		line.Color = plotutil.Color(b)
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(run.Names[b], line)
	}
	p.Legend.Top = true
	setLimits(p, opts.Limit)

	return p, nil
}

// Save writes p to path; the extension picks the format (png, svg, pdf, ...).
func Save(p *plot.Plot, path string, widthInches, heightInches float64) error {
	if err := p.Save(vg.Length(widthInches)*vg.Inch, vg.Length(heightInches)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// OutputPath swaps the extension of path for format. An empty format keeps
// path as is.
func OutputPath(path, format string) (string, error) {
	if format == "" {
		return path, nil
	}
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch format {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + format, nil
}

func setLabels(p *plot.Plot, axes Axes, unit string) {
	h, v := axes.Labels()
	p.X.Label.Text = axisLabel(h, unit)
	p.Y.Label.Text = axisLabel(v, unit)
}

// setLimits pins both axes to ±limit. plot.Add widens the axes to each
// plotter's data range, so it must run after the last Add.
func setLimits(p *plot.Plot, limit float64) {
	if limit > 0 {
		p.X.Min, p.X.Max = -limit, limit
		p.Y.Min, p.Y.Max = -limit, limit
	}
}

func axisLabel(axis, unit string) string {
	if unit == "" {
		return axis
	}
	return fmt.Sprintf("%s (%s)", axis, unit)
}

// finiteXYs pairs xs and ys, dropping points gonum would reject.
func finiteXYs(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
