package plot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadCSV reads a comma separated file with a header row into a data
// frame. Columns whose non-empty cells all parse as numbers become Float
// fields, empty cells are NaN. All other columns become String fields.
func ReadCSV(r io.Reader, name string) (*DataFrame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	df := NewDataFrame(name, nil)
	if len(records) == 0 {
		return df, nil
	}
	header := records[0]
	rows := records[1:]
	df.N = len(rows)

	for col, h := range header {
		h = strings.TrimSpace(h)
		if col == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if h == "" {
			h = fmt.Sprintf("V%d", col+1)
		}
		if df.Has(h) {
			return nil, fmt.Errorf("reading %s: duplicate column %s", name, h)
		}
		df.Add(h, parseColumn(rows, col, df.Pool))
	}
	return df, nil
}

// parseColumn converts column col of rows into a field.
func parseColumn(rows [][]string, col int, pool *StringPool) Field {
	numeric := NewField(len(rows), Float, pool)
	for i, row := range rows {
		cell := ""
		if col < len(row) {
			cell = strings.TrimSpace(row[col])
		}
		if cell == "" {
			numeric.Data[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return stringColumn(rows, col, pool)
		}
		numeric.Data[i] = v
	}
	return numeric
}

func stringColumn(rows [][]string, col int, pool *StringPool) Field {
	f := NewField(len(rows), String, pool)
	for i, row := range rows {
		cell := ""
		if col < len(row) {
			cell = strings.TrimSpace(row[col])
		}
		f.Data[i] = float64(pool.Add(cell))
	}
	return f
}

// LoadCSV reads the CSV file path. A missing file yields a
// *FileNotFoundError.
func LoadCSV(path string) (*DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	return ReadCSV(file, filepath.Base(path))
}

// CheckSchema makes sure df has all the given fields and that they are
// numeric.
func CheckSchema(df *DataFrame, fields ...string) error {
	var missing, nonNumeric []string
	seen := NewStringSet()
	for _, f := range fields {
		if seen.Contains(f) {
			continue
		}
		seen.Add(f)
		col, ok := df.Columns[f]
		switch {
		case !ok:
			missing = append(missing, f)
		case col.Type != Float:
			nonNumeric = append(nonNumeric, f)
		}
	}
	if len(missing) > 0 || len(nonNumeric) > 0 {
		return &SchemaError{Dataset: df.Name, Missing: missing, NonNumeric: nonNumeric}
	}
	return nil
}
