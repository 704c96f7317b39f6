package output

import (
	"encoding/json"
	"io"

	"github.com/eugeneliukindev/csvcat/internal/query"
)

// JSONFormatter renders results as JSON Lines
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the result as JSON Lines: one object per row keyed by
// header for a row set, a single {name: value} object for a scalar, and
// {name: null} for an empty aggregation.
func (j *JSONFormatter) Format(headers []string, result *query.Result) error {
	encoder := json.NewEncoder(j.writer)

	switch result.Kind() {
	case query.KindRows:
		for _, row := range result.Rows() {
			obj := make(map[string]string, len(headers))
			for i, header := range headers {
				obj[header] = row[i]
			}
			if err := encoder.Encode(obj); err != nil {
				return err
			}
		}
	case query.KindScalar:
		return encoder.Encode(map[string]interface{}{
			result.Agg().String(): result.Scalar().Value(),
		})
	case query.KindEmpty:
		return encoder.Encode(map[string]interface{}{
			result.Agg().String(): nil,
		})
	}

	return nil
}
