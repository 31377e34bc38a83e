package plot

import (
	"fmt"

	"github.com/vdobler/surfplot/stat"
)

// Stat is the interface of statistical transform.
//
// Statistical transform take a data frame and produce an other data frame.
// This is typically done by "summarizing", "modeling" or "transforming"
// the data in a statistically significant way.
type Stat interface {
	// Name returns the name of this statistic.
	Name() string

	// Apply this statistic to data. The plot can be used to
	// access the current scales.
	Apply(data *DataFrame, p *Plot) *DataFrame

	// Info returns the StatInfo which describes how this
	// statistic can be used.
	Info() StatInfo
}

// StatInfo contains information about how a stat can be used.
type StatInfo struct {
	// NeededAes are the aestetics which must be present in the
	// data frame. If not all needed aestetics are mapped this
	// statistics cannot be applied.
	NeededAes []string

	// OptionalAes are the aestetics which are used by this
	// statistics if present, but it is no error if they are
	// not mapped.
	OptionalAes []string
}

// Grid is the two dimensional mean table of one partition: Rows are
// the sorted distinct y (axis 1) values, Cols the sorted distinct x
// (axis 2) values. Cells without records are absent.
type Grid = stat.Table

// -------------------------------------------------------------------------
// StatGrid

// StatGrid aggregates z over the (y,x) pairs: the resulting data frame
// has one row per grid cell in row major order with the fields x, y, z
// and count. Absent cells have z NaN and count 0.
type StatGrid struct{}

var _ Stat = StatGrid{}

func (StatGrid) Name() string { return "StatGrid" }

func (StatGrid) Info() StatInfo {
	return StatInfo{
		NeededAes: []string{"x", "y", "z"},
	}
}

// Grid computes the mean table of data.
func (StatGrid) Grid(data *DataFrame) *Grid {
	return stat.Bin(data.Columns["y"].Data, data.Columns["x"].Data, data.Columns["z"].Data)
}

func (s StatGrid) Apply(data *DataFrame, _ *Plot) *DataFrame {
	if data == nil || data.N == 0 {
		return nil
	}
	grid := s.Grid(data)

	pool := data.Pool
	n := len(grid.Rows) * len(grid.Cols)
	result := NewDataFrame(fmt.Sprintf("%s gridded by y,x", data.Name), pool)
	result.N = n
	X := NewField(n, data.Columns["x"].Type, pool)
	Y := NewField(n, data.Columns["y"].Type, pool)
	Z := NewField(n, Float, pool)
	Count := NewField(n, Float, pool)
	i := 0
	for r, y := range grid.Rows {
		for c, x := range grid.Cols {
			X.Data[i], Y.Data[i] = x, y
			Z.Data[i] = grid.Mean[r][c]
			Count.Data[i] = float64(grid.Count[r][c])
			i++
		}
	}
	result.Add("x", X)
	result.Add("y", Y)
	result.Add("z", Z)
	result.Add("count", Count)
	return result
}

// BestPerGroup returns one record per distinct value of group, ordered
// ascending by group: the record with the maximum value. All fields of
// df are kept.
func BestPerGroup(df *DataFrame, group, value string) (*DataFrame, error) {
	if df == nil || df.N == 0 {
		name := ""
		if df != nil {
			name = df.Name
		}
		return nil, &EmptyDatasetError{Dataset: name}
	}
	for _, f := range []string{group, value} {
		if !df.Has(f) {
			return nil, &FieldNotFoundError{Dataset: df.Name, Field: f}
		}
	}

	g := df.Columns[group]
	levels, idx := stat.GroupArgMax(g.Data, df.Columns[value].Data)
	if len(levels) == 0 {
		return nil, &EmptyDatasetError{Dataset: df.Name, Group: group + "=NaN"}
	}
	for i, j := range idx {
		if j < 0 {
			return nil, &EmptyDatasetError{
				Dataset: df.Name,
				Group:   fmt.Sprintf("%s=%s", group, g.String(levels[i])),
			}
		}
	}

	best := df.Select(idx)
	best.Name = fmt.Sprintf("best %s per %s", value, group)
	return best, nil
}
