package reader

import (
	"encoding/csv"
	"fmt"
	"os"
)

// LoadCSV reads a character-separated file into a Table.
//
// The first record becomes the header row; the rest become data rows.
// Returns an error if the file cannot be opened, if any row has a field
// count different from the header, or if the file is empty.
func LoadCSV(path string, delim rune) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	if delim != 0 {
		r.Comma = delim
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}

	return &Table{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}
