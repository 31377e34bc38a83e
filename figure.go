package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/vdobler/surfplot/geom"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a built surface plot. It can be drawn to any gonum canvas,
// written as an image or turned into an interactive chart.
type Figure struct {
	Plot *Plot
}

// SurfaceSeries is the surface of one partition.
type SurfaceSeries struct {
	Name    string // e.g. CLIENT_THREADS=4
	Level   float64
	Color   color.Color
	Surface *Surface
}

// Title of the figure.
func (f *Figure) Title() string { return f.Plot.Title }

// Labels returns the titles of the x, y and z axes.
func (f *Figure) Labels() (x, y, z string) {
	return f.Plot.fieldName("x"), f.Plot.fieldName("y"), f.Plot.fieldName("z")
}

// Series returns the surfaces in ascending partition order.
func (f *Figure) Series() []SurfaceSeries {
	var series []SurfaceSeries
	p := f.Plot
	cs := p.Scales["color"]
	for _, layer := range p.Layers {
		if layer.Geom == nil {
			continue
		}
		for _, fund := range layer.Fundamentals {
			s := SurfaceSeries{Name: layer.Name, Surface: NewSurface(fund.Data)}
			if fund.Data.Has("color") && fund.Data.N > 0 && cs != nil {
				field := fund.Data.Columns["color"]
				s.Level = field.Data[0]
				s.Name = fmt.Sprintf("%s=%s", p.fieldName("color"), field.String(s.Level))
				s.Color = cs.Color(s.Level)
			}
			series = append(series, s)
		}
	}
	return series
}

// Grobs returns all grobs of all layers sorted back to front.
func (f *Figure) Grobs() []Grob {
	var grobs []Grob
	for _, layer := range f.Plot.Layers {
		grobs = append(grobs, layer.Grobs...)
	}
	f.Plot.Camera.SortByDepth(len(grobs),
		func(i int) geom.Point { return grobs[i].Anchor() },
		func(i, j int) { grobs[i], grobs[j] = grobs[j], grobs[i] })
	return grobs
}

// Draw draws the figure to c: title on top, color bar at the right,
// partition legend in the upper left corner and the 3D axes box with
// the surfaces in the remaining space.
func (f *Figure) Draw(c draw.Canvas) {
	p := f.Plot
	theme := MergeStyles(p.Theme.TextStyle, DefaultTheme.TextStyle)
	textColor := String2Color(theme["color"])

	bg := p.Theme.Background
	if bg == "" {
		bg = DefaultTheme.Background
	}
	c.FillPolygon(String2Color(bg), []vg.Point{
		c.Min, {X: c.Max.X, Y: c.Min.Y}, c.Max, {X: c.Min.X, Y: c.Max.Y},
	})

	pad := vg.Points(8)
	c = draw.Crop(c, pad, -pad, pad, -pad)

	if p.Title != "" {
		sty := textStyle(String2Float(theme["title.size"], 4, 72), textColor)
		sty.YAlign = draw.YTop
		c.FillText(sty, vg.Point{X: c.Center().X, Y: c.Max.Y}, p.Title)
		c.Max.Y -= sty.Height(p.Title) + pad
	}

	width := c.Max.X - c.Min.X
	if cs, ok := p.Scales["color"]; ok && len(cs.Breaks) > 0 {
		barWidth := width / 8
		if barWidth < vg.Points(60) {
			barWidth = vg.Points(60)
		}
		bar := draw.Crop(c, width-barWidth, 0, 0, 0)
		f.drawColorBar(bar, cs, theme)
		c.Max.X -= barWidth + pad

		f.drawLegend(c, cs, theme)
	}

	vp := NewViewport(draw.Crop(c, 6*pad, -6*pad, 6*pad, -6*pad), p.Camera)
	f.drawBox(vp, theme)
	for _, g := range f.Grobs() {
		g.Draw(vp)
	}
	f.drawAxes(vp, theme)
}

// drawColorBar draws a vertical color bar spanning the minimum to the
// maximum partition value into c.
func (f *Figure) drawColorBar(c draw.Canvas, cs *Scale, theme AesMapping) {
	cmap := NewViridis()
	min, max := cs.DomainMin, cs.DomainMax
	if !(min < max) {
		min, max = min-0.5, max+0.5
	}
	cmap.SetMin(min)
	cmap.SetMax(max)

	bar := gplot.New()
	bar.BackgroundColor = nil
	bar.HideX()
	bar.Y.Label.Text = cs.Title
	bar.Y.Label.TextStyle = textStyle(String2Float(theme["label.size"], 4, 72), String2Color(theme["color"]))
	bar.Y.Tick.Label = textStyle(String2Float(theme["size"], 4, 72), String2Color(theme["color"]))
	bar.Y.Tick.Label.XAlign = draw.XRight
	bar.Add(colorStrips{cmap: cmap, n: 64})

	// Center a bar of 60% height.
	h := c.Max.Y - c.Min.Y
	bar.Draw(draw.Crop(c, 0, 0, h/5, -h/5))
}

// colorStrips fills the data area with n horizontal strips colored by
// cmap.
type colorStrips struct {
	cmap *Viridis
	n    int
}

func (cb colorStrips) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, cb.cmap.Min(), cb.cmap.Max()
}

func (cb colorStrips) Plot(c draw.Canvas, p *gplot.Plot) {
	trX, trY := p.Transforms(&c)
	min, max := cb.cmap.Min(), cb.cmap.Max()
	step := (max - min) / float64(cb.n)
	x0, x1 := trX(0), trX(1)
	for i := 0; i < cb.n; i++ {
		lo, hi := min+float64(i)*step, min+float64(i+1)*step
		col, err := cb.cmap.At(clip((lo+hi)/2, min, max))
		if err != nil {
			continue
		}
		y0, y1 := trY(lo), trY(hi)
		c.FillPolygon(col, []vg.Point{
			{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
		})
	}
}

// thumb is the legend thumbnail of a partition.
type thumb struct {
	color color.Color
}

func (t thumb) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(t.color, []vg.Point{
		c.Min, {X: c.Max.X, Y: c.Min.Y}, c.Max, {X: c.Min.X, Y: c.Max.Y},
	})
}

func (f *Figure) drawLegend(c draw.Canvas, cs *Scale, theme AesMapping) {
	leg := gplot.NewLegend()
	leg.Top, leg.Left = true, true
	leg.TextStyle = textStyle(String2Float(theme["size"], 4, 72), String2Color(theme["color"]))
	leg.TextStyle.XAlign = draw.XLeft
	leg.ThumbnailWidth = vg.Points(12)
	for i, level := range cs.Breaks {
		leg.Add(fmt.Sprintf("%s=%s", cs.Title, cs.Labels[i]), thumb{cs.Color(level)})
	}
	leg.Draw(c)
}

// setAxis returns p with component axis set to v.
func setAxis(p geom.Point, axis int, v float64) geom.Point {
	switch axis {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
	return p
}

var axisScales = [3]string{"x", "y", "z"}

// drawBox draws the three back panes of the axes box and their grid
// lines at the breaks of the scales.
func (f *Figure) drawBox(vp Viewport, theme AesMapping) {
	p := f.Plot
	pane := MergeStyles(p.Theme.PaneStyle, DefaultTheme.PaneStyle)
	grid := MergeStyles(p.Theme.GridStyle, DefaultTheme.GridStyle)

	for _, bp := range vp.Camera.BackPanes() {
		GrobFacet{
			corners: bp.Corners[:],
			fill:    String2Color(pane["fill"]),
			stroke:  String2Color(pane["color"]),
			size:    String2Float(pane["size"], 0, 10),
		}.Draw(vp)

		for b := 0; b < 3; b++ {
			if b == bp.Axis {
				continue
			}
			s, ok := p.Scales[axisScales[b]]
			if !ok || s.Pos == nil {
				continue
			}
			other := 3 - bp.Axis - b
			for _, br := range s.Breaks {
				t := s.Pos(br)
				if t < 0 || t > 1 {
					continue
				}
				from := setAxis(setAxis(geom.Point{}, bp.Axis, bp.At), b, t)
				GrobLine{
					from:     setAxis(from, other, 0),
					to:       setAxis(from, other, 1),
					size:     String2Float(grid["size"], 0, 10),
					linetype: String2LineType(grid["linetype"]),
					color:    String2Color(grid["color"]),
				}.Draw(vp)
			}
		}
	}
}

// drawAxes draws tick labels and axis titles along the axis edges of
// the box.
func (f *Figure) drawAxes(vp Viewport, theme AesMapping) {
	p := f.Plot
	textColor := String2Color(theme["color"])
	tickSize := String2Float(theme["size"], 4, 72)
	labelSize := String2Float(theme["label.size"], 4, 72)

	for axis, name := range axisScales {
		s, ok := p.Scales[name]
		if !ok || s.Pos == nil {
			continue
		}
		edge, out := vp.Camera.AxisEdge(axis)

		a, b := vp.Map(edge.From), vp.Map(edge.From.Add(out))
		dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
		if n := math.Hypot(dx, dy); n > 0 {
			dx, dy = dx/n, dy/n
		}
		xa, ya := alignAway(dx, dy)

		for i, br := range s.Breaks {
			t := s.Pos(br)
			if t < 0 || t > 1 {
				continue
			}
			GrobText{
				at: edge.Lerp(t), dir: out, offset: 6,
				text: s.Labels[i], size: tickSize, color: textColor,
				xalign: xa, yalign: ya,
			}.Draw(vp)
		}

		label := GrobText{
			at: edge.Lerp(0.5), dir: out, offset: 6 + 5*tickSize,
			text: s.Title, size: labelSize, color: textColor,
			xalign: draw.XCenter, yalign: draw.YCenter,
		}
		if axis == 2 {
			label.rotation = math.Pi / 2
		}
		label.Draw(vp)
	}
}

// WriterTo returns an io.WriterTo that writes the figure as an image of
// the given size in the given format (png, svg, pdf, eps, jpg, tif).
func (f *Figure) WriterTo(w, h vg.Length, format string) (io.WriterTo, error) {
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}

// Save writes the figure to file. The format is determined by the file
// extension.
func (f *Figure) Save(w, h vg.Length, file string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	wt, err := f.WriterTo(w, h, format)
	if err != nil {
		return err
	}

	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		e := out.Close()
		if err == nil {
			err = e
		}
	}()

	_, err = wt.WriteTo(out)
	return err
}
