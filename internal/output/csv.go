package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/eugeneliukindev/csvcat/internal/query"
)

// CSVFormatter renders results as CSV with a header row
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the result as CSV. A row set is written as the header
// row followed by data rows. A scalar result becomes a header of the
// aggregation name and one value record; an empty aggregation writes the
// name header only.
func (c *CSVFormatter) Format(headers []string, result *query.Result) error {
	csvWriter := csv.NewWriter(c.writer)

	switch result.Kind() {
	case query.KindRows:
		if err := csvWriter.Write(headers); err != nil {
			return err
		}
		for _, row := range result.Rows() {
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
	case query.KindScalar:
		if err := csvWriter.Write([]string{result.Agg().String()}); err != nil {
			return err
		}
		if err := csvWriter.Write([]string{result.Scalar().String()}); err != nil {
			return err
		}
	case query.KindEmpty:
		if err := csvWriter.Write([]string{result.Agg().String()}); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
