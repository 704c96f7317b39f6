package query

import "fmt"

// Reduce collapses one column of the row set to a single scalar.
//
// Every value in the column must convert to a number (integer parse
// first, then real); a value that converts to neither aborts the call
// with ErrNonNumericValue. This holds for count too, mirroring the
// original tool's strictness, so that count over a column behaves
// consistently with the other reductions. An empty numeric list produces
// a KindEmpty result rather than an error.
func Reduce(headers []string, rows [][]string, column string, op AggregateOp) (*Result, error) {
	idx := columnIndex(headers, column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	numbers := make([]Number, 0, len(rows))
	for _, row := range rows {
		n, err := parseNumber(row[idx])
		if err != nil {
			return nil, fmt.Errorf("%w: %q in column %q", ErrNonNumericValue, row[idx], column)
		}
		numbers = append(numbers, n)
	}

	if len(numbers) == 0 {
		return emptyResult(op), nil
	}

	switch op {
	case AggSum:
		return scalarResult(sumNumbers(numbers), op), nil
	case AggAvg:
		avg := sumNumbers(numbers).Float64() / float64(len(numbers))
		return scalarResult(floatNumber(avg), op), nil
	case AggMin:
		return scalarResult(minNumber(numbers), op), nil
	case AggMax:
		return scalarResult(maxNumber(numbers), op), nil
	case AggCount:
		return scalarResult(intNumber(int64(len(numbers))), op), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAggregation, op)
	}
}

// sumNumbers totals the list; all-integer input keeps integer width
func sumNumbers(numbers []Number) Number {
	total := numbers[0]
	for _, n := range numbers[1:] {
		total = total.add(n)
	}
	return total
}

// minNumber returns the smallest element, preserving its original width
func minNumber(numbers []Number) Number {
	min := numbers[0]
	for _, n := range numbers[1:] {
		if n.less(min) {
			min = n
		}
	}
	return min
}

// maxNumber returns the largest element, preserving its original width
func maxNumber(numbers []Number) Number {
	max := numbers[0]
	for _, n := range numbers[1:] {
		if max.less(n) {
			max = n
		}
	}
	return max
}
