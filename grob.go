package plot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vdobler/surfplot/geom"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Grob is a graphical object in box space, the unit cube which the
// scales map the data to.
type Grob interface {
	Draw(vp Viewport)

	// Anchor is the box space point used to order grobs back to front.
	Anchor() geom.Point
}

// Viewport maps box space to a region of a canvas as seen by a camera.
type Viewport struct {
	Canvas draw.Canvas
	Camera geom.Camera

	center vg.Point
	scale  vg.Length
}

// NewViewport fits the projected unit cube into c.
func NewViewport(c draw.Canvas, cam geom.Camera) Viewport {
	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	size := w
	if h < size {
		size = h
	}
	ext := cam.Extent()
	if ext == 0 {
		ext = 1
	}
	return Viewport{
		Canvas: c,
		Camera: cam,
		center: c.Center(),
		scale:  size / vg.Length(2*ext),
	}
}

// Map projects the box space point p onto the canvas.
func (vp Viewport) Map(p geom.Point) vg.Point {
	u, v, _ := vp.Camera.Project(p)
	return vg.Point{
		X: vp.center.X + vg.Length(u)*vp.scale,
		Y: vp.center.Y + vg.Length(v)*vp.scale,
	}
}

// Offset projects p and moves the result by dist canvas units along the
// projection of the box space direction dir.
func (vp Viewport) Offset(p, dir geom.Point, dist vg.Length) vg.Point {
	a, b := vp.Map(p), vp.Map(p.Add(dir))
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return a
	}
	return vg.Point{
		X: a.X + dist*vg.Length(dx/n),
		Y: a.Y + dist*vg.Length(dy/n),
	}
}

// -------------------------------------------------------------------------
// Grob Facet

// GrobFacet is a filled planar polygon, a facet of a surface or a pane
// of the axes box.
type GrobFacet struct {
	corners []geom.Point
	fill    color.Color
	stroke  color.Color // nil: no border
	size    float64
}

func (f GrobFacet) Draw(vp Viewport) {
	pts := make([]vg.Point, len(f.corners))
	for i, p := range f.corners {
		pts[i] = vp.Map(p)
	}
	if f.fill != nil {
		vp.Canvas.FillPolygon(f.fill, pts)
	}
	if f.stroke != nil && f.size > 0 {
		sty := draw.LineStyle{Color: f.stroke, Width: vg.Points(f.size)}
		vp.Canvas.StrokeLines(sty, append(pts, pts[0]))
	}
}

func (f GrobFacet) Anchor() geom.Point {
	var s geom.Point
	for _, p := range f.corners {
		s = s.Add(p)
	}
	return s.Scale(1 / float64(len(f.corners)))
}

func (f GrobFacet) String() string {
	return fmt.Sprintf("Facet(%v, fill=%v)", f.corners, f.fill)
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	from, to geom.Point
	size     float64
	linetype LineType
	color    color.Color
}

func (line GrobLine) Draw(vp Viewport) {
	if line.linetype == BlankLine {
		return
	}
	width := vg.Points(line.size)
	sty := draw.LineStyle{
		Color:  line.color,
		Width:  width,
		Dashes: line.linetype.Dashes(width),
	}
	a, b := vp.Map(line.from), vp.Map(line.to)
	vp.Canvas.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
}

func (line GrobLine) Anchor() geom.Point {
	return line.from.Add(line.to).Scale(0.5)
}

// -------------------------------------------------------------------------
// Grob Text

// GrobText is a text placed at a box space point. The text is moved by
// offset canvas points along the projected direction dir.
type GrobText struct {
	at       geom.Point
	dir      geom.Point
	offset   float64
	text     string
	size     float64
	color    color.Color
	rotation float64 // radians
	xalign   text.XAlignment
	yalign   text.YAlignment
}

func (t GrobText) Draw(vp Viewport) {
	sty := textStyle(t.size, t.color)
	sty.Rotation = t.rotation
	sty.XAlign = t.xalign
	sty.YAlign = t.yalign
	pt := vp.Map(t.at)
	if t.offset != 0 {
		pt = vp.Offset(t.at, t.dir, vg.Points(t.offset))
	}
	vp.Canvas.FillText(sty, pt, t.text)
}

func (t GrobText) Anchor() geom.Point { return t.at }

// textStyle returns a plain text style of the given size in points.
func textStyle(size float64, c color.Color) text.Style {
	if c == nil {
		c = color.Black
	}
	return text.Style{
		Color:   c,
		Font:    font.From(gplot.DefaultFont, vg.Points(size)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: gplot.DefaultTextHandler,
	}
}

// alignAway chooses the text alignment for a label placed in direction
// (dx,dy) from its anchor so the label does not cover the anchor.
func alignAway(dx, dy float64) (text.XAlignment, text.YAlignment) {
	xa, ya := draw.XCenter, draw.YCenter
	switch {
	case dx > 0.35:
		xa = draw.XLeft
	case dx < -0.35:
		xa = draw.XRight
	}
	switch {
	case dy > 0.35:
		ya = draw.YBottom
	case dy < -0.35:
		ya = draw.YTop
	}
	return xa, ya
}
