package geom

import (
	"math"
	"sort"
)

// Quad is one facet of a surface spanned by the mesh points (r,c),
// (r,c+1), (r+1,c+1) and (r+1,c).
type Quad struct {
	Row, Col int
	Corners  [4]Point
}

// Quads returns the facets of the surface given by the equal shaped
// meshes x, y and z. A facet is produced only if all four of its
// corners are defined.
func Quads(x, y, z [][]float64) []Quad {
	var quads []Quad
	for r := 0; r+1 < len(z); r++ {
		for c := 0; c+1 < len(z[r]); c++ {
			q := Quad{Row: r, Col: c}
			idx := [4][2]int{{r, c}, {r, c + 1}, {r + 1, c + 1}, {r + 1, c}}
			ok := true
			for i, rc := range idx {
				p := Point{x[rc[0]][rc[1]], y[rc[0]][rc[1]], z[rc[0]][rc[1]]}
				if p.IsNaN() {
					ok = false
					break
				}
				q.Corners[i] = p
			}
			if ok {
				quads = append(quads, q)
			}
		}
	}
	return quads
}

// Center is the mean of the four corners.
func (q Quad) Center() Point {
	var s Point
	for _, p := range q.Corners {
		s = s.Add(p)
	}
	return s.Scale(0.25)
}

// Normal is the unit normal of q computed from its diagonals.
func (q Quad) Normal() Point {
	d1 := q.Corners[2].Sub(q.Corners[0])
	d2 := q.Corners[3].Sub(q.Corners[1])
	return d1.Cross(d2).Unit()
}

// DefaultLight is the direction towards the light source used to shade
// facets.
var DefaultLight = Point{-1, -1, 1}.Unit()

// Shade returns the brightness factor of a facet with the given normal.
// Facets facing the light get 1, facets perpendicular to it 0.6.
func Shade(normal, light Point) float64 {
	return 0.6 + 0.4*math.Abs(normal.Dot(light))
}

// SortByDepth orders items back to front as seen by c. point must
// return the box space reference point of item i. Items of equal depth
// keep their order.
func (c Camera) SortByDepth(n int, point func(i int) Point, swap func(i, j int)) {
	depths := make([]float64, n)
	for i := range depths {
		depths[i] = c.Depth(point(i))
	}
	sort.Stable(byDepth{depths, swap})
}

type byDepth struct {
	d    []float64
	swap func(i, j int)
}

func (b byDepth) Len() int           { return len(b.d) }
func (b byDepth) Less(i, j int) bool { return b.d[i] < b.d[j] }
func (b byDepth) Swap(i, j int) {
	b.d[i], b.d[j] = b.d[j], b.d[i]
	b.swap(i, j)
}
