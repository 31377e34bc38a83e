// Package stat contains the numeric kernels behind the statistical
// transformations of package plot. The functions work on plain float64
// slices, NaN marks a missing value.
package stat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// Table is a two dimensional table of means. Rows and Cols are sorted
// ascending. Mean[r][c] is NaN and Count[r][c] is zero for cells without
// any observation.
type Table struct {
	Rows, Cols []float64
	Mean       [][]float64
	Count      [][]int
}

// At returns the mean of cell (r,c) and whether the cell holds any data.
func (t *Table) At(r, c int) (float64, bool) {
	if r < 0 || r >= len(t.Rows) || c < 0 || c >= len(t.Cols) {
		return math.NaN(), false
	}
	if t.Count[r][c] == 0 {
		return math.NaN(), false
	}
	return t.Mean[r][c], true
}

// Defined returns the number of cells holding data.
func (t *Table) Defined() int {
	n := 0
	for r := range t.Count {
		for _, cnt := range t.Count[r] {
			if cnt > 0 {
				n++
			}
		}
	}
	return n
}

// Bin groups the observations values[i] into the cell keyed by
// (rows[i], cols[i]) and averages each cell. Observations where any of
// the three values is NaN are ignored, they contribute neither a key nor
// a value. The result does not depend on the order of the observations.
func Bin(rows, cols, values []float64) *Table {
	if len(rows) != len(values) || len(cols) != len(values) {
		panic("stat: length mismatch")
	}

	type key struct{ r, c float64 }
	cells := make(map[key][]float64)
	rowSet := make(map[float64]struct{})
	colSet := make(map[float64]struct{})
	for i, v := range values {
		r, c := rows[i], cols[i]
		if math.IsNaN(v) || math.IsNaN(r) || math.IsNaN(c) {
			continue
		}
		k := key{r, c}
		cells[k] = append(cells[k], v)
		rowSet[r] = struct{}{}
		colSet[c] = struct{}{}
	}

	t := &Table{
		Rows: sortedKeys(rowSet),
		Cols: sortedKeys(colSet),
	}
	t.Mean = make([][]float64, len(t.Rows))
	t.Count = make([][]int, len(t.Rows))
	for ri, r := range t.Rows {
		t.Mean[ri] = make([]float64, len(t.Cols))
		t.Count[ri] = make([]int, len(t.Cols))
		for ci, c := range t.Cols {
			xs := cells[key{r, c}]
			if len(xs) == 0 {
				t.Mean[ri][ci] = math.NaN()
				continue
			}
			t.Mean[ri][ci] = Mean(xs)
			t.Count[ri][ci] = len(xs)
		}
	}
	return t
}

// Mean returns the arithmetic mean of xs. The values are summed in
// ascending order so the result is independent of their order in xs.
// xs is sorted in place.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sort.Float64s(xs)
	return gstat.Mean(xs, nil)
}

// Range returns the minimum and maximum of the non-NaN values in xs.
// ok is false if there is no such value.
func Range(xs []float64) (min, max float64, ok bool) {
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return math.NaN(), math.NaN(), false
	}
	return floats.Min(finite), floats.Max(finite), true
}

func sortedKeys(set map[float64]struct{}) []float64 {
	keys := make([]float64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}
