package query

import (
	"fmt"
	"strings"
)

// ParseCondition parses a filter condition of the form <column><op><value>,
// e.g. "price>=400" or "brand=apple".
//
// The column is one or more letters or underscores. Two-character operator
// symbols are matched before their one-character prefixes, so ">=400"
// never parses as ">" with value "=400". The value is the non-empty
// remainder and may not itself contain operator characters.
func ParseCondition(s string) (Condition, error) {
	i := 0
	for i < len(s) && isColumnChar(s[i]) {
		i++
	}
	column := s[:i]
	if column == "" {
		return Condition{}, fmt.Errorf("%w: %q", ErrBadCondition, s)
	}

	rest := s[i:]
	var symbol string
	for _, sym := range operatorSymbols {
		if strings.HasPrefix(rest, sym) {
			symbol = sym
			break
		}
	}
	if symbol == "" {
		return Condition{}, fmt.Errorf("%w: %q", ErrBadCondition, s)
	}

	value := rest[len(symbol):]
	if value == "" || strings.ContainsAny(value, "><=!") {
		return Condition{}, fmt.Errorf("%w: %q", ErrBadCondition, s)
	}

	op, err := ParseOperator(symbol)
	if err != nil {
		return Condition{}, err
	}

	return Condition{Column: column, Op: op, Value: value}, nil
}

func isColumnChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

// ParseAggregation parses an aggregation request of the form
// <column>=<operation>, e.g. "rating=max". Anything other than exactly
// two "="-delimited parts is malformed.
func ParseAggregation(s string) (string, AggregateOp, error) {
	parts := strings.Split(s, "=")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("%w: %q", ErrBadAggregation, s)
	}

	op, err := ParseAggregateOp(parts[1])
	if err != nil {
		return "", 0, err
	}

	return parts[0], op, nil
}
