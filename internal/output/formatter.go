// Package output renders query results in various formats.
//
// Currently supported formats:
//   - Grid: bordered text table
//   - CSV: comma-separated values with header row
//   - JSON Lines: one JSON object per line
//
// Every formatter renders all three result variants: a row set is
// rendered as header plus rows; a scalar as the aggregation name with
// its value; an empty aggregation by the formatter's no-data convention.
//
// Example usage:
//
//	formatter := output.NewGridFormatter(os.Stdout)
//	if err := formatter.Format(headers, result); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/eugeneliukindev/csvcat/internal/query"
)

// Formatter defines the interface for result formatters.
//
// Implementers must provide Format to render a result and SetOutput to
// change the output destination.
type Formatter interface {
	// Format writes the result in the formatter's specific format
	Format(headers []string, result *query.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
