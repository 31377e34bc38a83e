package plot

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// DataFrame is a table of N rows and named columns.
type DataFrame struct {
	Name string
	N    int

	// Columns maps the column name to its data.
	Columns map[string]Field

	// Order is the column order of the source, e.g. the CSV header.
	Order []string

	Pool *StringPool
}

// NewDataFrame returns an empty data frame using pool for String fields.
// A nil pool allocates a new one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]Field),
		Pool:    pool,
	}
}

// Add appends a column. The field must have df.N values.
func (df *DataFrame) Add(name string, f Field) {
	if len(f.Data) != df.N {
		panic(fmt.Sprintf("plot: column %s has %d values, data frame %s has %d rows",
			name, len(f.Data), df.Name, df.N))
	}
	if _, ok := df.Columns[name]; !ok {
		df.Order = append(df.Order, name)
	}
	df.Columns[name] = f
}

// Has reports whether df has a column named field.
func (df *DataFrame) Has(field string) bool {
	_, ok := df.Columns[field]
	return ok
}

// FieldNames returns the column names in source order followed by any
// column added without order information.
func (df *DataFrame) FieldNames() []string {
	seen := NewStringSetFrom(df.Order)
	names := append([]string(nil), df.Order...)
	var extra []string
	for n := range df.Columns {
		if !seen.Contains(n) {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Delete removes field from df.
func (df *DataFrame) Delete(field string) {
	delete(df.Columns, field)
	for i, n := range df.Order {
		if n == field {
			df.Order = append(df.Order[:i], df.Order[i+1:]...)
			break
		}
	}
}

// Select returns a new data frame with the rows idx of df in that order.
func (df *DataFrame) Select(idx []int) *DataFrame {
	result := NewDataFrame(df.Name, df.Pool)
	result.N = len(idx)
	for _, name := range df.FieldNames() {
		f := df.Columns[name]
		sel := NewField(len(idx), f.Type, df.Pool)
		for i, j := range idx {
			sel.Data[i] = f.Data[j]
		}
		result.Add(name, sel)
	}
	return result
}

// Append adds the rows of other to df. Both frames must have the same
// fields.
func (df *DataFrame) Append(other *DataFrame) {
	for name, f := range df.Columns {
		o, ok := other.Columns[name]
		if !ok {
			panic(fmt.Sprintf("plot: cannot append %s to %s: no field %s", other.Name, df.Name, name))
		}
		f.Data = append(f.Data, o.Data...)
		df.Columns[name] = f
	}
	df.N += other.N
}

// Value formats the value of field in row i.
func (df *DataFrame) Value(field string, i int) string {
	f, ok := df.Columns[field]
	if !ok {
		return ""
	}
	return f.String(f.Data[i])
}

// -------------------------------------------------------------------------
// Fields

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Float FieldType = iota
	String
)

func (t FieldType) String() string {
	switch t {
	case Float:
		return "Float"
	case String:
		return "String"
	}
	return "???"
}

// Field is one column of a data frame.
type Field struct {
	Type FieldType
	Data []float64
	Pool *StringPool
}

func NewField(n int, typ FieldType, pool *StringPool) Field {
	return Field{
		Type: typ,
		Data: make([]float64, n),
		Pool: pool,
	}
}

// Discrete reports whether f holds categorical data.
func (f Field) Discrete() bool {
	return f.Type == String
}

func (f Field) Copy() Field {
	c := Field{Type: f.Type, Pool: f.Pool}
	c.Data = append([]float64(nil), f.Data...)
	return c
}

// Const returns a field of length n with all elements equal to x.
func (f Field) Const(x float64, n int) Field {
	c := NewField(n, f.Type, f.Pool)
	for i := range c.Data {
		c.Data[i] = x
	}
	return c
}

// String formats the value x of field f.
func (f Field) String(x float64) string {
	if f.Type == String {
		if math.IsNaN(x) {
			return ""
		}
		return f.Pool.Get(int(x))
	}
	if math.IsNaN(x) {
		return "NaN"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// MinMax returns the minimum and maximum non-NaN values in f and their
// indices. The indices are -1 if f has no such value.
func (f Field) MinMax() (min, max float64, mini, maxi int) {
	min, max = math.Inf(+1), math.Inf(-1)
	mini, maxi = -1, -1
	for i, v := range f.Data {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min, mini = v, i
		}
		if v > max {
			max, maxi = v, i
		}
	}
	return min, max, mini, maxi
}

// Levels returns the distinct non-NaN values of f.
func (f Field) Levels() FloatSet {
	return NewFloatSetFrom(f.Data)
}

// -------------------------------------------------------------------------
// Data frame helpers

// Levels returns the distinct values of field in df.
func Levels(df *DataFrame, field string) FloatSet {
	return df.Columns[field].Levels()
}

// MinMax determines the minimum and maximum value of field in df.
func MinMax(df *DataFrame, field string) (min, max float64, mini, maxi int) {
	return df.Columns[field].MinMax()
}

// Filter extracts all rows from df where field == value.
func Filter(df *DataFrame, field string, value float64) *DataFrame {
	f := df.Columns[field]
	var idx []int
	for i, v := range f.Data {
		if v == value {
			idx = append(idx, i)
		}
	}
	return df.Select(idx)
}

// Partition splits df into one data frame per level of field. The
// returned frames are in the order of levels; rows keep their order.
func Partition(df *DataFrame, field string, levels []float64) []*DataFrame {
	pos := make(map[float64]int, len(levels))
	for i, l := range levels {
		pos[l] = i
	}
	idx := make([][]int, len(levels))
	for i, v := range df.Columns[field].Data {
		if p, ok := pos[v]; ok {
			idx[p] = append(idx[p], i)
		}
	}
	parts := make([]*DataFrame, len(levels))
	for p := range levels {
		parts[p] = df.Select(idx[p])
		parts[p].Name = fmt.Sprintf("%s|%s=%s", df.Name, field, df.Columns[field].String(levels[p]))
	}
	return parts
}
