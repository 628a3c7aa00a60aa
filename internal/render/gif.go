package render

import (
	"fmt"
	"image"
	"image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

type GIFOptions struct {
	Axes  Axes
	Unit  string
	Limit float64
	// Size is the square frame edge in pixels.
	Size int
	FPS  int
}

// GIFWriter rasterises frames with gonum/plot and encodes them as an
// animated GIF on Close.
type GIFWriter struct {
	path string
	opts GIFOptions
	anim gif.GIF
}

func NewGIFWriter(path string, opts GIFOptions) *GIFWriter {
	if opts.Size <= 0 {
		opts.Size = 480
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	return &GIFWriter{path: path, opts: opts, anim: gif.GIF{LoopCount: 0}}
}

// Delay is the per-frame delay in hundredths of a second. GIF cannot go
// below one hundredth, so rates above 100 fps play at 100.
func (w *GIFWriter) Delay() int {
	d := 100 / w.opts.FPS
	if d < 1 {
		d = 1
	}
	return d
}

func (w *GIFWriter) Frames() int { return len(w.anim.Image) }

func (w *GIFWriter) WriteFrame(f Frame) error {
	p, err := FramePlot(f, w.opts.Axes, w.opts.Unit, w.opts.Limit)
	if err != nil {
		return err
	}

	size := vg.Length(w.opts.Size)
	c := vgimg.NewWith(vgimg.UseWH(size, size), vgimg.UseDPI(72))
	p.Draw(draw.New(c))

	src := c.Image()
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	imgdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, imgdraw.Src)

	w.anim.Image = append(w.anim.Image, dst)
	w.anim.Delay = append(w.anim.Delay, w.Delay())
	return nil
}

// Close encodes the collected frames to the output file.
func (w *GIFWriter) Close() error {
	if len(w.anim.Image) == 0 {
		return fmt.Errorf("no frames to write to %s", w.path)
	}
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gif.EncodeAll(f, &w.anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return f.Close()
}

// FramePlot draws one animation frame: a grey trail and a coloured marker
// per body.
func FramePlot(f Frame, axes Axes, unit string, limit float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("t = %g", f.Time)
	setLabels(p, axes, unit)

	for i, b := range f.Bodies {
		if trail := vecXYs(b.Trail); len(trail) >= 2 {
			line, err := plotter.NewLine(trail)
			if err != nil {
				return nil, err
			}
			line.Color = trailColor
			line.LineStyle.Width = vg.Points(1)
			p.Add(line)
		}

		cur := vecXYs([]r2.Vec{b.Current})
		if len(cur) == 0 {
			continue
		}
		marker, err := plotter.NewScatter(cur)
		if err != nil {
			return nil, err
		}
		marker.GlyphStyle.Color = plotutil.Color(i)
		marker.GlyphStyle.Shape = draw.CircleGlyph{}
		marker.GlyphStyle.Radius = vg.Points(4)
		p.Add(marker)
		p.Legend.Add(b.Name, marker)
	}
	p.Legend.Top = true
	setLimits(p, limit)

	return p, nil
}

func vecXYs(vs []r2.Vec) plotter.XYs {
	pts := make(plotter.XYs, 0, len(vs))
	for _, v := range vs {
		if finite(v.X) && finite(v.Y) {
			pts = append(pts, plotter.XY{X: v.X, Y: v.Y})
		}
	}
	return pts
}
