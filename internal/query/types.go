// Package query implements in-memory filtering and aggregation over a
// loaded table.
//
// A Processor owns the working row set for one query session. Filters are
// applied one condition at a time, each producing a narrower row set; an
// aggregation collapses the row set to a single scalar, after which the
// session is terminal. Comparison is numeric when the condition value
// parses as a number and lexical otherwise; aggregation always requires
// numeric values.
//
// Example usage:
//
//	proc := query.NewProcessor(table)
//	cond, err := query.ParseCondition("price>=400")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := proc.Filter(cond); err != nil {
//	    log.Fatal(err)
//	}
//	result := proc.State()
package query

import "fmt"

// Operator represents a comparison operator in a filter condition
type Operator int

const (
	OpGreater      Operator = iota // >
	OpLess                         // <
	OpEqual                        // =
	OpGreaterEqual                 // >=
	OpLessEqual                    // <=
	OpNotEqual                     // !=
)

// operatorSymbols lists every supported operator, two-character symbols
// first so prefixes like ">" never shadow ">=" during condition parsing.
var operatorSymbols = []string{">=", "<=", "!=", ">", "<", "="}

// ParseOperator resolves an operator symbol to an Operator
func ParseOperator(symbol string) (Operator, error) {
	switch symbol {
	case ">":
		return OpGreater, nil
	case "<":
		return OpLess, nil
	case "=":
		return OpEqual, nil
	case ">=":
		return OpGreaterEqual, nil
	case "<=":
		return OpLessEqual, nil
	case "!=":
		return OpNotEqual, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, symbol)
	}
}

// String returns the operator's symbol
func (op Operator) String() string {
	switch op {
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpEqual:
		return "="
	case OpGreaterEqual:
		return ">="
	case OpLessEqual:
		return "<="
	case OpNotEqual:
		return "!="
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// AggregateOp represents a scalar-reduction operation
type AggregateOp int

const (
	AggSum AggregateOp = iota
	AggAvg
	AggMin
	AggMax
	AggCount
)

// ParseAggregateOp resolves an aggregation name to an AggregateOp
func ParseAggregateOp(name string) (AggregateOp, error) {
	switch name {
	case "sum":
		return AggSum, nil
	case "avg":
		return AggAvg, nil
	case "min":
		return AggMin, nil
	case "max":
		return AggMax, nil
	case "count":
		return AggCount, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAggregation, name)
	}
}

// String returns the aggregation's name
func (op AggregateOp) String() string {
	switch op {
	case AggSum:
		return "sum"
	case AggAvg:
		return "avg"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	case AggCount:
		return "count"
	default:
		return fmt.Sprintf("AggregateOp(%d)", int(op))
	}
}

// Condition is a single filter predicate: column, operator, value.
// The value stays a string; numeric-vs-lexical mode is decided per filter
// call based on whether the value parses as a number.
type Condition struct {
	Column string
	Op     Operator
	Value  string
}

// String renders the condition in its surface form, e.g. "price>=400"
func (c Condition) String() string {
	return c.Column + c.Op.String() + c.Value
}
