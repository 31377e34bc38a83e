package plot

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Report is a table of selected records, e.g. the best configuration
// per group.
type Report struct {
	Title string
	Group string
	Value string
	Rows  *DataFrame
}

// BestReport selects the record with the largest value per group.
func BestReport(df *DataFrame, group, value string) (*Report, error) {
	best, err := BestPerGroup(df, group, value)
	if err != nil {
		return nil, err
	}
	return &Report{
		Title: fmt.Sprintf("Best %s per %s", value, group),
		Group: group,
		Value: value,
		Rows:  best,
	}, nil
}

var (
	reportTitle  = lipgloss.NewStyle().Bold(true)
	reportHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	reportCell   = lipgloss.NewStyle().Padding(0, 1)
	reportValue  = reportCell.Bold(true)
)

// Table formats the report. A nil or empty columns shows all fields of
// the records.
func (r *Report) Table(columns []string) *table.Table {
	if len(columns) == 0 {
		columns = r.Rows.FieldNames()
	}
	rows := make([][]string, r.Rows.N)
	for i := range rows {
		rows[i] = make([]string, len(columns))
		for j, c := range columns {
			rows[i][j] = r.Rows.Value(c, i)
		}
	}
	valueCol := -1
	for j, c := range columns {
		if c == r.Value {
			valueCol = j
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return reportHeader
			case col == valueCol:
				return reportValue
			}
			return reportCell
		})
}

// WriteReport writes the title and the table of r to w.
func WriteReport(w io.Writer, r *Report, columns []string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", reportTitle.Render(r.Title), r.Table(columns).Render())
	return err
}
