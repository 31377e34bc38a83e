package geom

import "math"

// Box is an axis aligned box in data space.
type Box struct {
	Min, Max Point
}

// UnitCube is the box all data is normalized to before projection.
var UnitCube = Box{Max: Point{1, 1, 1}}

// Corners returns the eight corners of b.
func (b Box) Corners() []Point {
	var corners []Point
	for _, x := range []float64{b.Min.X, b.Max.X} {
		for _, y := range []float64{b.Min.Y, b.Max.Y} {
			for _, z := range []float64{b.Min.Z, b.Max.Z} {
				corners = append(corners, Point{x, y, z})
			}
		}
	}
	return corners
}

// Pane is one face of the unit cube.
type Pane struct {
	Axis    int     // 0, 1 or 2 for the x, y or z axis the pane is normal to
	At      float64 // 0 or 1, the position of the pane along Axis
	Corners [4]Point
}

// BackPanes returns the three faces of the unit cube turned away from
// the camera. These are drawn behind the surfaces.
func (c Camera) BackPanes() []Pane {
	eye := c.Eye()
	comp := [3]float64{eye.X, eye.Y, eye.Z}
	panes := make([]Pane, 0, 3)
	for axis := 0; axis < 3; axis++ {
		at := 0.0
		if comp[axis] < 0 {
			at = 1
		}
		panes = append(panes, Pane{Axis: axis, At: at, Corners: paneCorners(axis, at)})
	}
	return panes
}

func paneCorners(axis int, at float64) [4]Point {
	square := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	var corners [4]Point
	for i, s := range square {
		switch axis {
		case 0:
			corners[i] = Point{at, s[0], s[1]}
		case 1:
			corners[i] = Point{s[0], at, s[1]}
		default:
			corners[i] = Point{s[0], s[1], at}
		}
	}
	return corners
}

// Edge is a line segment in box space.
type Edge struct {
	From, To Point
}

// Lerp returns the point at fraction t along e.
func (e Edge) Lerp(t float64) Point {
	return e.From.Add(e.To.Sub(e.From).Scale(t))
}

// AxisEdge returns the edge of the unit cube along which ticks and the
// label of axis (0, 1 or 2) are drawn. The x and y axes use the floor
// edge nearest to the viewer, the z axis the leftmost vertical edge.
// Outward is the direction tick labels are offset to.
func (c Camera) AxisEdge(axis int) (e Edge, outward Point) {
	if axis == 2 {
		best := math.Inf(1)
		for _, x := range []float64{0, 1} {
			for _, y := range []float64{0, 1} {
				u, _, _ := c.Project(Point{x, y, 0})
				if u < best {
					best = u
					e = Edge{Point{x, y, 0}, Point{x, y, 1}}
					outward = Point{x - 0.5, y - 0.5, 0}.Unit()
				}
			}
		}
		return e, outward
	}

	best := math.Inf(-1)
	for _, at := range []float64{0, 1} {
		var cand Edge
		var out Point
		if axis == 0 {
			cand = Edge{Point{0, at, 0}, Point{1, at, 0}}
			out = Point{0, at - 0.5, 0}.Unit()
		} else {
			cand = Edge{Point{at, 0, 0}, Point{at, 1, 0}}
			out = Point{at - 0.5, 0, 0}.Unit()
		}
		if d := c.Depth(cand.Lerp(0.5)); d > best {
			best, e, outward = d, cand, out
		}
	}
	return e, outward
}
