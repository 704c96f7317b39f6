// Package reader loads tabular data files into an in-memory table.
//
// Two formats are supported: character-separated text (CSV, TSV, or any
// single-rune delimiter) and Apache Parquet via the segmentio/parquet-go
// library. Both loaders produce the same Table shape: an ordered header
// row followed by string-typed data rows. All values stay strings until
// the query engine attempts numeric coercion.
package reader

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptySource is returned when a source file contains no header row.
var ErrEmptySource = errors.New("source has no header row")

// Table is an in-memory dataset: a header row plus data rows.
//
// Every row has exactly len(Headers) fields; the loaders enforce this at
// load time. A Table is never mutated after load, so multiple query
// sessions may share one instance.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Load reads a tabular data file, dispatching on the file extension.
//
// Files ending in .parquet are read as parquet; everything else is read
// as character-separated text using the given delimiter.
func Load(path string, delim rune) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return LoadParquet(path)
	}
	return LoadCSV(path, delim)
}
