package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

// LoadParquet reads a parquet file into a Table.
//
// Column order follows the parquet schema. Every value is rendered to its
// string form so the resulting Table is indistinguishable from one loaded
// from a CSV file. The entire file is loaded into memory.
func LoadParquet(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}
	headers := make([]string, len(fields))
	for i, field := range fields {
		headers[i] = field.Name()
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	rows := make([][]string, 0)
	for {
		row := make(map[string]interface{})
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		record := make([]string, len(headers))
		for i, header := range headers {
			record[i] = formatCell(row[header])
		}
		rows = append(rows, record)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// formatCell converts a parquet value to its string form
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
