package plot

import (
	"image/color"
	"math"

	"github.com/vdobler/surfplot/geom"
)

// Geom is a geometrical object, a type of visual for the plot.
type Geom interface {
	Name() string            // The name of the geom.
	NeededSlots() []string   // The needed slots to construct this geom.
	OptionalSlots() []string // The optional slots this geom understands.

	// Aes returns the merged default (fixed) aesthetics.
	Aes(plot *Plot) AesMapping

	// Construct splits the data into the fundamental geoms to draw
	// and trains the scales on them.
	Construct(df *DataFrame, p *Plot) []Fundamental

	// Render interpretes data as the specific geom and produces Grobs.
	Render(p *Plot, data *DataFrame, aes AesMapping) []Grob
}

// Fundamental is one drawable unit of a geom together with its data.
type Fundamental struct {
	Geom Geom
	Data *DataFrame
}

// trainScales is a helper for geom construction: some scales of p are
// trained on some fields of data. train maps the scale name to the
// fields it is trained on, e.g. {"y": {"ymin", "ymax"}}.
func trainScales(p *Plot, data *DataFrame, train map[string][]string) {
	for scaleName, fields := range train {
		scale, ok := p.Scales[scaleName]
		if !ok {
			continue
		}
		for _, field := range fields {
			if !data.Has(field) {
				continue
			}
			scale.Train(data.Columns[field])
		}
	}
}

// -------------------------------------------------------------------------
// Surface

// Surface is the mesh representation of a Grid: X[r][c] = Cols[c],
// Y[r][c] = Rows[r] and Z[r][c] the cell mean or NaN if the cell is
// absent.
type Surface struct {
	Rows, Cols []float64
	X, Y, Z    [][]float64
}

// NewSurface builds the meshes from a gridded data frame with fields
// x, y and z as produced by StatGrid.
func NewSurface(data *DataFrame) *Surface {
	x, y, z := data.Columns["x"].Data, data.Columns["y"].Data, data.Columns["z"].Data
	s := &Surface{
		Rows: NewFloatSetFrom(y).Elements(),
		Cols: NewFloatSetFrom(x).Elements(),
	}
	ri, ci := NewFloatSetFrom(y).Index(), NewFloatSetFrom(x).Index()
	s.X = make([][]float64, len(s.Rows))
	s.Y = make([][]float64, len(s.Rows))
	s.Z = make([][]float64, len(s.Rows))
	for r := range s.Rows {
		s.X[r] = make([]float64, len(s.Cols))
		s.Y[r] = make([]float64, len(s.Cols))
		s.Z[r] = make([]float64, len(s.Cols))
		for c := range s.Cols {
			s.X[r][c] = s.Cols[c]
			s.Y[r][c] = s.Rows[r]
			s.Z[r][c] = math.NaN()
		}
	}
	for i := 0; i < data.N; i++ {
		r, okr := ri[y[i]]
		c, okc := ci[x[i]]
		if !okr || !okc || math.IsNaN(z[i]) {
			continue
		}
		s.Z[r][c] = z[i]
	}
	return s
}

// Quads returns the drawable facets of s in data space.
func (s *Surface) Quads() []geom.Quad {
	return geom.Quads(s.X, s.Y, s.Z)
}

// -------------------------------------------------------------------------
// Geom Surface

// GeomSurface draws one semi transparent surface per level of the color
// aesthetic. Facets are flat shaded, without antialiased borders.
type GeomSurface struct {
	Style AesMapping // The individal fixed, aka non-mapped aesthetics
}

var _ Geom = GeomSurface{}

func (s GeomSurface) Name() string            { return "GeomSurface" }
func (s GeomSurface) NeededSlots() []string   { return []string{"x", "y", "z"} }
func (s GeomSurface) OptionalSlots() []string { return []string{"color", "alpha"} }

func (s GeomSurface) Aes(plot *Plot) AesMapping {
	return MergeStyles(s.Style, plot.Theme.SurfaceStyle, DefaultTheme.SurfaceStyle)
}

func (s GeomSurface) Construct(df *DataFrame, p *Plot) []Fundamental {
	trainScales(p, df, map[string][]string{"x": {"x"}, "y": {"y"}, "z": {"z"}})

	if !df.Has("color") {
		return []Fundamental{{Geom: s, Data: df}}
	}
	levels := Levels(df, "color").Elements()
	parts := Partition(df, "color", levels)
	fundamentals := make([]Fundamental, len(parts))
	for i, part := range parts {
		fundamentals[i] = Fundamental{Geom: s, Data: part}
	}
	return fundamentals
}

func (s GeomSurface) Render(p *Plot, data *DataFrame, style AesMapping) []Grob {
	scaleX, scaleY, scaleZ := p.Scales["x"], p.Scales["y"], p.Scales["z"]
	fill := s.fill(p, data, style)
	shade := style["shade"] != "false"
	lt := String2LineType(style["linetype"])
	size := String2Float(style["size"], 0, 10)

	surface := NewSurface(data)
	quads := surface.Quads()
	if len(quads) == 0 {
		p.Warnf("Surface %s has no facet with four defined corners, nothing drawn", data.Name)
		return nil
	}

	grobs := make([]Grob, 0, len(quads))
	for _, q := range quads {
		facet := GrobFacet{fill: fill}
		for _, c := range q.Corners {
			facet.corners = append(facet.corners, geom.Point{
				X: scaleX.Pos(c.X),
				Y: scaleY.Pos(c.Y),
				Z: scaleZ.Pos(c.Z),
			})
		}
		if shade {
			n := geom.Quad{Corners: [4]geom.Point{
				facet.corners[0], facet.corners[1], facet.corners[2], facet.corners[3],
			}}.Normal()
			facet.fill = Shade(fill, geom.Shade(n, geom.DefaultLight))
		}
		if lt != BlankLine && size > 0 {
			facet.stroke = fill
			facet.size = size
		}
		grobs = append(grobs, facet)
	}
	return grobs
}

// fill determines the color of the surface in data: the color scale
// applied to the level of the partition or the fixed color style.
func (s GeomSurface) fill(p *Plot, data *DataFrame, style AesMapping) color.Color {
	alpha := String2Float(style["alpha"], 0, 1)
	var c color.Color = String2Color(style["color"])
	if scale, ok := p.Scales["color"]; ok && data.Has("color") && data.N > 0 {
		c = scale.Color(data.Columns["color"].Data[0])
	}
	return SetAlpha(c, alpha)
}
