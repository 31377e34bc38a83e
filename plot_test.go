package plot

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const fullGrid = `CLIENT_THREADS,PAGE_SIZE,RING_SIZE,AverageRate(it/s),AverageGbps
1,4096,8,100,1.0
1,4096,16,120,2.0
1,8192,8,110,1.5
1,8192,16,130,2.5
2,4096,8,200,3.0
2,4096,16,240,4.0
2,8192,8,210,3.5
2,8192,16,250,3.8
4,4096,8,300,5.0
4,4096,8,320,7.0
4,4096,16,340,6.0
4,8192,8,310,5.5
4,8192,16,350,6.5
`

func gbpsRequest() SurfaceRequest {
	return SurfaceRequest{
		Value:     "AverageGbps",
		Partition: "CLIENT_THREADS",
		Axis1:     "PAGE_SIZE",
		Axis2:     "RING_SIZE",
		Title:     "Surface Plot for Average Gbps",
	}
}

func TestBuild(t *testing.T) {
	df := mustReadCSV(t, fullGrid)
	fig, err := Build(df, gbpsRequest())
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	if fig.Title() != "Surface Plot for Average Gbps" {
		t.Errorf("Got title %q", fig.Title())
	}
	x, y, z := fig.Labels()
	if x != "RING_SIZE" || y != "PAGE_SIZE" || z != "AverageGbps" {
		t.Errorf("Got labels %s, %s, %s", x, y, z)
	}

	series := fig.Series()
	if len(series) != 3 {
		t.Fatalf("Got %d series, want 3", len(series))
	}
	for i, want := range []string{"CLIENT_THREADS=1", "CLIENT_THREADS=2", "CLIENT_THREADS=4"} {
		if series[i].Name != want {
			t.Errorf("Series %d: got %q, want %q", i, series[i].Name, want)
		}
	}

	s := series[2].Surface
	if len(s.Rows) != 2 || len(s.Cols) != 2 {
		t.Fatalf("Got %dx%d grid, want 2x2", len(s.Rows), len(s.Cols))
	}
	if s.Rows[0] != 4096 || s.Cols[1] != 16 {
		t.Errorf("Got rows %v, cols %v", s.Rows, s.Cols)
	}
	if s.Z[0][0] != 6 {
		t.Errorf("Got mean %g, want 6", s.Z[0][0])
	}
	if s.X[1][0] != 8 || s.Y[1][0] != 8192 || s.Z[1][0] != 5.5 {
		t.Errorf("Got (%g,%g,%g)", s.X[1][0], s.Y[1][0], s.Z[1][0])
	}

	// One quad per complete 2x2 grid.
	if n := len(fig.Grobs()); n != 3 {
		t.Errorf("Got %d grobs, want 3", n)
	}
}

func TestBuildColors(t *testing.T) {
	df := mustReadCSV(t, fullGrid)
	fig, err := Build(df, gbpsRequest())
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	series := fig.Series()
	if got := Hex(series[0].Color); got != "#440154" {
		t.Errorf("Lowest level: got %s, want #440154", got)
	}
	if got := Hex(series[2].Color); got != "#fde725" {
		t.Errorf("Highest level: got %s, want #fde725", got)
	}
	if Hex(series[1].Color) == Hex(series[0].Color) || Hex(series[1].Color) == Hex(series[2].Color) {
		t.Errorf("Middle level not distinct: %s", Hex(series[1].Color))
	}

	// The same level gets the same color in every figure.
	req := gbpsRequest()
	req.Value = "AverageRate(it/s)"
	other, err := Build(df, req)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	for i, s := range other.Series() {
		if Hex(s.Color) != Hex(series[i].Color) {
			t.Errorf("Series %s: got %s, want %s", s.Name, Hex(s.Color), Hex(series[i].Color))
		}
	}

	for _, g := range fig.Grobs() {
		facet, ok := g.(GrobFacet)
		if !ok {
			t.Fatalf("Got %T, want GrobFacet", g)
		}
		_, _, _, a := facet.fill.RGBA()
		if a != 0x8080 {
			t.Errorf("Got alpha %04x, want 8080", a)
		}
	}
}

func TestBuildHoles(t *testing.T) {
	df := mustReadCSV(t, benchmarks)
	log, hook := test.NewNullLogger()
	req := gbpsRequest()
	req.Log = log
	fig, err := Build(df, req)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	series := fig.Series()
	if len(series) != 2 {
		t.Fatalf("Got %d series, want 2", len(series))
	}
	s := series[0].Surface
	if !math.IsNaN(s.Z[1][1]) {
		t.Errorf("Absent cell: got %g, want NaN", s.Z[1][1])
	}
	if len(s.Quads()) != 0 {
		t.Errorf("Got %d quads over a hole", len(s.Quads()))
	}
	if len(fig.Grobs()) != 0 {
		t.Errorf("Got %d grobs, want none", len(fig.Grobs()))
	}

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && strings.Contains(e.Message, "no facet") {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("Got %d warnings, want 2", warnings)
	}
}

func TestBuildErrors(t *testing.T) {
	df := mustReadCSV(t, benchmarks)

	req := gbpsRequest()
	req.Axis2 = "RING"
	_, err := Build(df, req)
	var notFound *FieldNotFoundError
	if !errors.As(err, &notFound) || notFound.Field != "RING" {
		t.Errorf("Got %v, want *FieldNotFoundError for RING", err)
	}

	_, err = Build(df.Select(nil), gbpsRequest())
	var empty *EmptyDatasetError
	if !errors.As(err, &empty) {
		t.Errorf("Got %v, want *EmptyDatasetError", err)
	}

	req = gbpsRequest()
	req.Partition = "Mode"
	_, err = Build(df, req)
	var schema *SchemaError
	if !errors.As(err, &schema) || len(schema.NonNumeric) != 1 || schema.NonNumeric[0] != "Mode" {
		t.Errorf("Got %v, want *SchemaError for Mode", err)
	}
}

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"gray95", color.NRGBA{0xf2, 0xf2, 0xf2, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestSlug(t *testing.T) {
	for s, want := range map[string]string{
		"AverageRate(it/s)": "averagerate_it_s",
		"AverageGbps":       "averagegbps",
		"  p99 latency ":    "p99_latency",
	} {
		if got := Slug(s); got != want {
			t.Errorf("Slug(%q): got %q, want %q", s, got, want)
		}
	}
}
