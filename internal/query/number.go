package query

import "strconv"

// Number is a numeric value that remembers whether it was parsed as an
// integer or a real. Integer inputs stay integers through sum/min/max;
// avg and mixed integer/real arithmetic promote to float64.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

func intNumber(v int64) Number {
	return Number{i: v}
}

func floatNumber(v float64) Number {
	return Number{isFloat: true, f: v}
}

// parseNumber converts a cell value to a Number: integer parse first,
// then real
func parseNumber(s string) (Number, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return intNumber(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, err
	}
	return floatNumber(f), nil
}

// IsFloat reports whether the value carries a fractional width
func (n Number) IsFloat() bool {
	return n.isFloat
}

// Float64 returns the value widened to float64
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Value returns the underlying int64 or float64
func (n Number) Value() interface{} {
	if n.isFloat {
		return n.f
	}
	return n.i
}

// String renders integers without a decimal point and reals in their
// shortest form
func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

// add returns n+m, promoting to float when either side is a float
func (n Number) add(m Number) Number {
	if n.isFloat || m.isFloat {
		return floatNumber(n.Float64() + m.Float64())
	}
	return intNumber(n.i + m.i)
}

// less reports whether n sorts before m numerically
func (n Number) less(m Number) bool {
	if !n.isFloat && !m.isFloat {
		return n.i < m.i
	}
	return n.Float64() < m.Float64()
}
