package geom

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearPoint(p, q Point) bool { return near(p.X, q.X) && near(p.Y, q.Y) && near(p.Z, q.Z) }

func TestProject(t *testing.T) {
	cam := DefaultCamera
	u, v, d := cam.Project(Point{0.5, 0.5, 0.5})
	if !near(u, 0) || !near(v, 0) || !near(d, 0) {
		t.Errorf("Center: got %g %g %g", u, v, d)
	}
	u, v, d = cam.Project(Point{0.5, 0.5, 1})
	if !near(u, 0) || !near(v, 0.5*math.Cos(math.Pi/6)) || !near(d, 0.25) {
		t.Errorf("Top: got %g %g %g", u, v, d)
	}
	if eye := cam.Eye(); !near(eye.Norm(), 1) {
		t.Errorf("Got |eye| = %g", eye.Norm())
	}
	if ext := cam.Extent(); ext <= 0.5 || ext > math.Sqrt(3)/2 {
		t.Errorf("Got extent %g", ext)
	}
}

func TestBackPanes(t *testing.T) {
	panes := DefaultCamera.BackPanes()
	want := []float64{0, 1, 0}
	if len(panes) != 3 {
		t.Fatalf("Got %d panes", len(panes))
	}
	for i, p := range panes {
		if p.Axis != i || p.At != want[i] {
			t.Errorf("Pane %d: got axis %d at %g, want at %g", i, p.Axis, p.At, want[i])
		}
		for _, c := range p.Corners {
			if comp := [3]float64{c.X, c.Y, c.Z}[i]; comp != p.At {
				t.Errorf("Pane %d: corner %v not on pane", i, c)
			}
		}
	}
}

func TestAxisEdge(t *testing.T) {
	cam := DefaultCamera
	tests := []struct {
		axis    int
		edge    Edge
		outward Point
	}{
		{0, Edge{Point{0, 0, 0}, Point{1, 0, 0}}, Point{0, -1, 0}},
		{1, Edge{Point{1, 0, 0}, Point{1, 1, 0}}, Point{1, 0, 0}},
		{2, Edge{Point{0, 0, 0}, Point{0, 0, 1}}, Point{-math.Sqrt2 / 2, -math.Sqrt2 / 2, 0}},
	}
	for _, tc := range tests {
		e, out := cam.AxisEdge(tc.axis)
		if e != tc.edge || !nearPoint(out, tc.outward) {
			t.Errorf("Axis %d: got %v %v, want %v %v", tc.axis, e, out, tc.edge, tc.outward)
		}
	}
	if mid := (Edge{Point{0, 0, 0}, Point{1, 0, 0}}).Lerp(0.25); mid != (Point{0.25, 0, 0}) {
		t.Errorf("Got %v", mid)
	}
}

func TestCorners(t *testing.T) {
	b := Box{Min: Point{0, 10, 5}, Max: Point{2, 10, 15}}
	corners := b.Corners()
	if len(corners) != 8 || corners[0] != b.Min || corners[7] != b.Max {
		t.Errorf("Got %v", corners)
	}
	if n := len(UnitCube.Corners()); n != 8 {
		t.Errorf("Got %d corners", n)
	}
}

func mesh(z [][]float64) (x, y [][]float64) {
	x = make([][]float64, len(z))
	y = make([][]float64, len(z))
	for r := range z {
		x[r] = make([]float64, len(z[r]))
		y[r] = make([]float64, len(z[r]))
		for c := range z[r] {
			x[r][c], y[r][c] = float64(c), float64(r)
		}
	}
	return x, y
}

func TestQuads(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		z    [][]float64
		want int
	}{
		{[][]float64{{1, 2}, {3, 4}}, 1},
		{[][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 4},
		{[][]float64{{1, 2, 3}, {4, nan, 6}, {7, 8, 9}}, 0},
		{[][]float64{{1, 2, nan}, {4, 5, 6}}, 1},
		{[][]float64{{1, 2, 3}}, 0},
		{nil, 0},
	}
	for i, tc := range tests {
		x, y := mesh(tc.z)
		if got := len(Quads(x, y, tc.z)); got != tc.want {
			t.Errorf("%d: got %d quads, want %d", i, got, tc.want)
		}
	}

	z := [][]float64{{1, 2, nan}, {4, 5, 6}}
	x, y := mesh(z)
	q := Quads(x, y, z)[0]
	if q.Row != 0 || q.Col != 0 || q.Corners[2] != (Point{1, 1, 5}) {
		t.Errorf("Got %+v", q)
	}
	if c := q.Center(); !nearPoint(c, Point{0.5, 0.5, 3}) {
		t.Errorf("Got center %v", c)
	}
}

func TestNormalAndShade(t *testing.T) {
	flat := Quad{Corners: [4]Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}}
	n := flat.Normal()
	if !nearPoint(n, Point{0, 0, 1}) {
		t.Errorf("Got normal %v", n)
	}
	if s := Shade(n, DefaultLight); !near(s, 0.6+0.4/math.Sqrt(3)) {
		t.Errorf("Got shade %g", s)
	}
	if s := Shade(Point{1, 0, 0}, Point{0, 1, 0}); s != 0.6 {
		t.Errorf("Got shade %g, want 0.6", s)
	}
}

func TestSortByDepth(t *testing.T) {
	points := []Point{{1, 0, 1}, {0, 1, 0}, {0.5, 0.5, 0.5}, {0, 1, 0}}
	names := []string{"front", "back", "center", "back2"}
	cam := DefaultCamera
	cam.SortByDepth(len(points),
		func(i int) Point { return points[i] },
		func(i, j int) {
			points[i], points[j] = points[j], points[i]
			names[i], names[j] = names[j], names[i]
		})
	want := []string{"back", "back2", "center", "front"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Got order %v, want %v", names, want)
			break
		}
	}
	for i := 1; i < len(points); i++ {
		if cam.Depth(points[i-1]) > cam.Depth(points[i]) {
			t.Errorf("Not sorted at %d", i)
		}
	}
}
