package plot

import (
	"fmt"
	"strings"
)

// FileNotFoundError is returned when the input file does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("input file %q not found", e.Path)
}

// SchemaError reports required columns which are absent from a data
// frame or which do not hold numeric data.
type SchemaError struct {
	Dataset    string
	Missing    []string
	NonNumeric []string
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing column(s) "+strings.Join(e.Missing, ", "))
	}
	if len(e.NonNumeric) > 0 {
		parts = append(parts, "non-numeric column(s) "+strings.Join(e.NonNumeric, ", "))
	}
	return fmt.Sprintf("schema of %s: %s", e.Dataset, strings.Join(parts, "; "))
}

// FieldNotFoundError is returned by Build and BestPerGroup if a requested
// field is not a column of the data frame.
type FieldNotFoundError struct {
	Dataset string
	Field   string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("no such field %s in %s", e.Field, e.Dataset)
}

// EmptyDatasetError is returned if a data frame has no rows or if a group
// has no usable rows after filtering. Group is empty in the first case.
type EmptyDatasetError struct {
	Dataset string
	Group   string
}

func (e *EmptyDatasetError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("group %s of %s has no rows", e.Group, e.Dataset)
	}
	return fmt.Sprintf("data set %s has no rows", e.Dataset)
}
