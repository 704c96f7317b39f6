package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/eugeneliukindev/csvcat/internal/query"
)

// noDataMessage is printed when an aggregation had no rows to reduce
const noDataMessage = "No data to aggregate"

// GridFormatter renders results as a bordered text table
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new grid formatter
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer
func (g *GridFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// Format writes the result as a bordered grid. A scalar result becomes a
// two-row grid of the aggregation name and its value; an empty
// aggregation prints a plain no-data line instead of a table.
func (g *GridFormatter) Format(headers []string, result *query.Result) error {
	switch result.Kind() {
	case query.KindRows:
		table := newGrid(g.writer)
		table.SetHeader(headers)
		table.AppendBulk(result.Rows())
		table.Render()
	case query.KindScalar:
		table := newGrid(g.writer)
		table.Append([]string{result.Agg().String()})
		table.Append([]string{result.Scalar().String()})
		table.Render()
	case query.KindEmpty:
		if _, err := fmt.Fprintln(g.writer, noDataMessage); err != nil {
			return err
		}
	}
	return nil
}

// newGrid configures a tablewriter with grid borders and verbatim cells
func newGrid(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)
	return table
}
