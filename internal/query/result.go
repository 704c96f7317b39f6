package query

// ResultKind tags the active variant of a Result
type ResultKind int

const (
	// KindRows means the result is a working row set
	KindRows ResultKind = iota

	// KindScalar means an aggregation collapsed the row set to one number
	KindScalar

	// KindEmpty means an aggregation found no numeric rows to reduce
	KindEmpty
)

// Result is the processed state of a query session: a row set, a scalar,
// or the empty marker. Exactly one variant is active; scalar and empty
// are terminal. Scalar and empty results remember the aggregation that
// produced them so renderers can label the value.
type Result struct {
	kind   ResultKind
	rows   [][]string
	scalar Number
	agg    AggregateOp
}

func rowsResult(rows [][]string) *Result {
	return &Result{kind: KindRows, rows: rows}
}

func scalarResult(n Number, agg AggregateOp) *Result {
	return &Result{kind: KindScalar, scalar: n, agg: agg}
}

func emptyResult(agg AggregateOp) *Result {
	return &Result{kind: KindEmpty, agg: agg}
}

// Kind returns the active variant tag
func (r *Result) Kind() ResultKind {
	return r.kind
}

// Rows returns the working row set; nil unless Kind() == KindRows
func (r *Result) Rows() [][]string {
	return r.rows
}

// Scalar returns the aggregation result; zero unless Kind() == KindScalar
func (r *Result) Scalar() Number {
	return r.scalar
}

// Agg returns the aggregation that produced a scalar or empty result
func (r *Result) Agg() AggregateOp {
	return r.agg
}

// Limit returns a result truncated to at most n rows. Non-row results
// and non-positive limits pass through unchanged.
func (r *Result) Limit(n int) *Result {
	if r.kind != KindRows || n <= 0 || len(r.rows) <= n {
		return r
	}
	return rowsResult(r.rows[:n])
}
