package query

import "errors"

// Every failure in this package is a local validation or conversion
// problem; nothing is transient or retryable. Callers match on these
// sentinels with errors.Is.
var (
	// ErrUnknownColumn is returned when a referenced column is absent
	// from the table headers
	ErrUnknownColumn = errors.New("column not found in headers")

	// ErrUnsupportedOperator is returned for an operator symbol outside
	// the supported set
	ErrUnsupportedOperator = errors.New("operator not supported")

	// ErrUnsupportedAggregation is returned for an unknown aggregation name
	ErrUnsupportedAggregation = errors.New("aggregation operation not supported")

	// ErrBadCondition is returned for a malformed filter condition string
	ErrBadCondition = errors.New("invalid filter condition format")

	// ErrBadAggregation is returned for a malformed aggregation string
	ErrBadAggregation = errors.New("invalid aggregation format")

	// ErrValueConversion is returned when a row value cannot be parsed as
	// a number while the filter runs in numeric mode
	ErrValueConversion = errors.New("value cannot be compared numerically")

	// ErrNonNumericValue is returned when a row value cannot be converted
	// to a number during aggregation
	ErrNonNumericValue = errors.New("non-numeric value")

	// ErrNotRowSet is returned when a filter or aggregation is attempted
	// after the session has already collapsed to a scalar
	ErrNotRowSet = errors.New("processed data is not a row set")
)
