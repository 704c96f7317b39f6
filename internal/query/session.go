package query

import (
	"fmt"

	"github.com/eugeneliukindev/csvcat/internal/reader"
)

// Processor owns the working state of one query session over a loaded
// table.
//
// The table itself is treated as read-only; the session starts from a
// deep copy of its rows, so several processors may share one table. Each
// successful Filter narrows the row set; a successful Aggregate replaces
// it with a scalar (or the empty marker), after which any further Filter
// or Aggregate fails with ErrNotRowSet. A failed call leaves the state
// exactly as it was.
//
// A Processor is not safe for concurrent use.
type Processor struct {
	table *reader.Table
	state *Result
}

// NewProcessor starts a query session whose working row set is a copy of
// the table's rows
func NewProcessor(table *reader.Table) *Processor {
	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return &Processor{
		table: table,
		state: rowsResult(rows),
	}
}

// Headers returns the table's header row
func (p *Processor) Headers() []string {
	return p.table.Headers
}

// State returns the current processed state
func (p *Processor) State() *Result {
	return p.state
}

// Filter narrows the working row set to rows satisfying the condition.
// Returns the processor for chaining.
func (p *Processor) Filter(cond Condition) (*Processor, error) {
	if p.state.kind != KindRows {
		return nil, fmt.Errorf("%w: cannot filter after aggregation", ErrNotRowSet)
	}

	rows, err := ApplyFilter(p.table.Headers, p.state.rows, cond)
	if err != nil {
		return nil, err
	}

	p.state = rowsResult(rows)
	return p, nil
}

// Aggregate reduces one column of the working row set to a scalar,
// leaving the session in a terminal state. Returns the processor for
// chaining.
func (p *Processor) Aggregate(column string, op AggregateOp) (*Processor, error) {
	if p.state.kind != KindRows {
		return nil, fmt.Errorf("%w: cannot aggregate twice", ErrNotRowSet)
	}

	result, err := Reduce(p.table.Headers, p.state.rows, column, op)
	if err != nil {
		return nil, err
	}

	p.state = result
	return p, nil
}
