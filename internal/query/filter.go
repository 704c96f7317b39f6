package query

import (
	"fmt"
	"strconv"
)

// ApplyFilter applies a single condition to rows, returning the ordered
// subsequence of rows satisfying it.
//
// The comparison mode is decided once per call: if the condition value
// parses as a number, every row value in the column is compared
// numerically, and a row value that fails to parse aborts the call with
// ErrValueConversion. Only a non-numeric condition value selects lexical
// string comparison. The input row order is preserved; an empty input is
// an empty output, not an error.
func ApplyFilter(headers []string, rows [][]string, cond Condition) ([][]string, error) {
	idx := columnIndex(headers, cond.Column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, cond.Column)
	}

	want, err := strconv.ParseFloat(cond.Value, 64)
	numeric := err == nil

	filtered := make([][]string, 0)
	for _, row := range rows {
		var match bool
		if numeric {
			got, err := strconv.ParseFloat(row[idx], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q in column %q", ErrValueConversion, row[idx], cond.Column)
			}
			match = compareNumbers(got, cond.Op, want)
		} else {
			match = compareStrings(row[idx], cond.Op, cond.Value)
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}

// columnIndex returns the position of a column in headers, or -1
func columnIndex(headers []string, column string) int {
	for i, h := range headers {
		if h == column {
			return i
		}
	}
	return -1
}

// compareNumbers compares two numbers using the given operator
func compareNumbers(left float64, op Operator, right float64) bool {
	switch op {
	case OpGreater:
		return left > right
	case OpLess:
		return left < right
	case OpEqual:
		return left == right
	case OpGreaterEqual:
		return left >= right
	case OpLessEqual:
		return left <= right
	case OpNotEqual:
		return left != right
	default:
		return false
	}
}

// compareStrings compares two strings using the given operator
// (case-sensitive, no trimming)
func compareStrings(left string, op Operator, right string) bool {
	switch op {
	case OpGreater:
		return left > right
	case OpLess:
		return left < right
	case OpEqual:
		return left == right
	case OpGreaterEqual:
		return left >= right
	case OpLessEqual:
		return left <= right
	case OpNotEqual:
		return left != right
	default:
		return false
	}
}
