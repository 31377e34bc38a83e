// Package geom provides the three dimensional geometry used to draw
// surface plots: points, the axes box, surface facets and an
// orthographic camera.
package geom

import "math"

// Point is a point or a vector in data or box space.
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point) Scale(f float64) Point { return Point{f * p.X, f * p.Y, f * p.Z} }
func (p Point) Dot(q Point) float64   { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }
func (p Point) Norm() float64         { return math.Sqrt(p.Dot(p)) }
func (p Point) IsNaN() bool           { return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) }
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Unit returns p scaled to length one. The zero vector is returned
// unchanged.
func (p Point) Unit() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

// Camera is an orthographic camera looking at the unit cube [0,1]^3
// from the direction given by Azimuth and Elevation in degrees.
// Azimuth is measured in the x-y plane from the x axis, Elevation
// above that plane.
type Camera struct {
	Azimuth, Elevation float64
}

// DefaultCamera is the customary view on a 3D plot.
var DefaultCamera = Camera{Azimuth: -60, Elevation: 30}

func (c Camera) angles() (sa, ca, se, ce float64) {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180
	return math.Sin(az), math.Cos(az), math.Sin(el), math.Cos(el)
}

// Eye is the unit vector pointing from the cube center to the viewer.
func (c Camera) Eye() Point {
	sa, ca, se, ce := c.angles()
	return Point{ce * ca, ce * sa, se}
}

// Project maps p to screen coordinates relative to the cube center.
// u grows to the right, v upwards. Depth grows towards the viewer.
func (c Camera) Project(p Point) (u, v, depth float64) {
	sa, ca, se, ce := c.angles()
	q := p.Sub(Point{0.5, 0.5, 0.5})
	right := Point{-sa, ca, 0}
	up := Point{-se * ca, -se * sa, ce}
	return q.Dot(right), q.Dot(up), q.Dot(c.Eye())
}

// Depth returns the distance of p towards the viewer.
func (c Camera) Depth(p Point) float64 {
	_, _, d := c.Project(p)
	return d
}

// Extent is the largest distance of a projected corner of the unit
// cube from the projected cube center. Scaling by 0.5/Extent fits the
// whole box into a unit square.
func (c Camera) Extent() float64 {
	ext := 0.0
	for _, p := range UnitCube.Corners() {
		u, v, _ := c.Project(p)
		ext = math.Max(ext, math.Max(math.Abs(u), math.Abs(v)))
	}
	return ext
}
