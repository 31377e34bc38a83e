package plot

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBestPerGroup(t *testing.T) {
	df := mustReadCSV(t, benchmarks)
	best, err := BestPerGroup(df, "CLIENT_THREADS", "AverageGbps")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if best.N != 2 {
		t.Fatalf("Got %d rows, want 2", best.N)
	}
	for i, want := range []struct{ threads, ring, gbps float64 }{
		{1, 16, 2.0},
		{2, 16, 4.0},
	} {
		got := [3]float64{
			best.Columns["CLIENT_THREADS"].Data[i],
			best.Columns["RING_SIZE"].Data[i],
			best.Columns["AverageGbps"].Data[i],
		}
		if got != [3]float64{want.threads, want.ring, want.gbps} {
			t.Errorf("Row %d: got %v, want %v", i, got, want)
		}
	}
	if len(best.Columns) != len(df.Columns) {
		t.Errorf("Got %d fields, want all %d", len(best.Columns), len(df.Columns))
	}
	if best.Name != "best AverageGbps per CLIENT_THREADS" {
		t.Errorf("Got name %q", best.Name)
	}
}

func TestBestPerGroupTies(t *testing.T) {
	df := mustReadCSV(t, "G,V,ID\n1,5,1\n1,7,2\n1,7,3\n2,3,4\n")
	best, err := BestPerGroup(df, "G", "V")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if got := best.Value("ID", 0); got != "2" {
		t.Errorf("Got ID %s, want first of tied records 2", got)
	}
	if got := best.Value("ID", 1); got != "4" {
		t.Errorf("Got ID %s, want 4", got)
	}
}

func TestBestPerGroupStringGroup(t *testing.T) {
	df := mustReadCSV(t, benchmarks)
	best, err := BestPerGroup(df, "Mode", "AverageRate(it/s)")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if best.N != 2 {
		t.Fatalf("Got %d rows, want 2", best.N)
	}
	got := best.Value("Mode", 0) + ":" + best.Value("AverageRate(it/s)", 0) + "," +
		best.Value("Mode", 1) + ":" + best.Value("AverageRate(it/s)", 1)
	if got != "poll:200,irq:240" {
		t.Errorf("Got %s", got)
	}
}

func TestBestPerGroupErrors(t *testing.T) {
	df := mustReadCSV(t, benchmarks)

	_, err := BestPerGroup(df, "CLIENT_THREADS", "Latency")
	var notFound *FieldNotFoundError
	if !errors.As(err, &notFound) || notFound.Field != "Latency" {
		t.Errorf("Got %v, want *FieldNotFoundError for Latency", err)
	}

	_, err = BestPerGroup(df.Select(nil), "CLIENT_THREADS", "AverageGbps")
	var empty *EmptyDatasetError
	if !errors.As(err, &empty) || empty.Group != "" {
		t.Errorf("Got %v, want *EmptyDatasetError", err)
	}

	nan := mustReadCSV(t, "G,V\n1,3\n2,\n2,\n")
	_, err = BestPerGroup(nan, "G", "V")
	if !errors.As(err, &empty) || empty.Group != "G=2" {
		t.Errorf("Got %v, want *EmptyDatasetError for G=2", err)
	}
	if !strings.Contains(err.Error(), "G=2") {
		t.Errorf("Got %q", err)
	}
}

func TestStatGrid(t *testing.T) {
	df := NewDataFrame("grid", nil)
	df.N = 5
	x := NewField(5, Float, df.Pool)
	y := NewField(5, Float, df.Pool)
	z := NewField(5, Float, df.Pool)
	copy(x.Data, []float64{16, 8, 8, 8, 16})
	copy(y.Data, []float64{1, 1, 1, 2, 2})
	copy(z.Data, []float64{10, 1, 3, 5, math.NaN()})
	df.Add("x", x)
	df.Add("y", y)
	df.Add("z", z)

	g := StatGrid{}.Apply(df, nil)
	if g.N != 4 {
		t.Fatalf("Got %d cells, want 4", g.N)
	}
	want := []struct{ x, y, z, count float64 }{
		{8, 1, 2, 2},
		{16, 1, 10, 1},
		{8, 2, 5, 1},
		{16, 2, math.NaN(), 0},
	}
	for i, w := range want {
		gx, gy := g.Columns["x"].Data[i], g.Columns["y"].Data[i]
		gz, gc := g.Columns["z"].Data[i], g.Columns["count"].Data[i]
		if gx != w.x || gy != w.y || gc != w.count {
			t.Errorf("Cell %d: got x=%g y=%g count=%g, want %v", i, gx, gy, gc, w)
		}
		if math.IsNaN(w.z) != math.IsNaN(gz) || (!math.IsNaN(w.z) && gz != w.z) {
			t.Errorf("Cell %d: got z=%g, want %g", i, gz, w.z)
		}
	}

	if got := (StatGrid{}).Apply(df.Select(nil), nil); got != nil {
		t.Errorf("Got %v for empty input, want nil", got)
	}
}
