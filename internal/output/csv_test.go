package output

import (
	"bytes"
	"testing"

	"github.com/eugeneliukindev/csvcat/internal/query"
	"github.com/eugeneliukindev/csvcat/internal/reader"
)

var testHeaders = []string{"name", "brand", "price", "rating"}

func testTable() *reader.Table {
	return &reader.Table{
		Headers: testHeaders,
		Rows: [][]string{
			{"phone1", "brand1", "100", "4.5"},
			{"phone2", "brand2", "200", "4.0"},
		},
	}
}

// rowsResult builds a KindRows result through a fresh session
func rowsResult(t *testing.T) *query.Result {
	t.Helper()
	return query.NewProcessor(testTable()).State()
}

// scalarResult builds a KindScalar result by reducing the price column
func scalarResult(t *testing.T, op query.AggregateOp) *query.Result {
	t.Helper()
	table := testTable()
	result, err := query.Reduce(table.Headers, table.Rows, "price", op)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	return result
}

// emptyResult builds a KindEmpty result by reducing zero rows
func emptyResult(t *testing.T, op query.AggregateOp) *query.Result {
	t.Helper()
	result, err := query.Reduce(testHeaders, nil, "price", op)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	return result
}

func TestCSVFormatter_Rows(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	if err := formatter.Format(testHeaders, rowsResult(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "name,brand,price,rating\n" +
		"phone1,brand1,100,4.5\n" +
		"phone2,brand2,200,4.0\n"
	if got := buf.String(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestCSVFormatter_Scalar(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	if err := formatter.Format(testHeaders, scalarResult(t, query.AggMax)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "max\n200\n"
	if got := buf.String(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestCSVFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	if err := formatter.Format(testHeaders, emptyResult(t, query.AggAvg)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "avg\n"
	if got := buf.String(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	formatter := NewCSVFormatter(&first)
	formatter.SetOutput(&second)

	if err := formatter.Format(testHeaders, rowsResult(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if first.Len() != 0 {
		t.Error("Format() wrote to the replaced writer")
	}
	if second.Len() == 0 {
		t.Error("Format() wrote nothing to the new writer")
	}
}
