package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eugeneliukindev/csvcat/internal/config"
	"github.com/eugeneliukindev/csvcat/internal/query"
)

const productsCSV = "name,brand,price,rating\n" +
	"phone1,brand1,100,4.5\n" +
	"phone2,brand2,200,4.0\n" +
	"phone3,brand3,300,3.5\n" +
	"phone4,brand1,400,4.8\n" +
	"phone5,brand2,500,4.2\n"

func writeProductsFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// execute runs the root command with the given arguments and returns
// captured stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config.Default())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRun_NoFlagsPrintsWholeTable(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	out, err := execute(t, "-f", "csv", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != productsCSV {
		t.Errorf("output = %q, want the input table back", out)
	}
}

func TestRun_FilterChain(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	out, err := execute(t, "--filter", "price>=200", "--filter", "brand=brand2", "-f", "csv", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "name,brand,price,rating\n" +
		"phone2,brand2,200,4.0\n" +
		"phone5,brand2,500,4.2\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_FilterThenAggregate(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	out, err := execute(t, "--filter", "price>=400", "--agg", "rating=max", "-f", "csv", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "max\n4.8\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_AggregateEmptySelection(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	out, err := execute(t, "--filter", "price>9000", "--agg", "price=avg", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "No data to aggregate\n" {
		t.Errorf("output = %q, want no-data message", out)
	}
}

func TestRun_GridOutput(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	out, err := execute(t, "--filter", "price<=100", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"name", "phone1", "4.5", "+"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_TabDelimited(t *testing.T) {
	content := strings.ReplaceAll(productsCSV, ",", "\t")
	path := writeProductsFile(t, "products.tsv", content)

	out, err := execute(t, "-d", "tab", "--filter", "price=500", "-f", "csv", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "name,brand,price,rating\nphone5,brand2,500,4.2\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_Limit(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	out, err := execute(t, "--limit", "2", "-f", "csv", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "name,brand,price,rating\n" +
		"phone1,brand1,100,4.5\n" +
		"phone2,brand2,200,4.0\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_Errors(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"malformed condition", []string{"--filter", "price", path}, query.ErrBadCondition},
		{"unknown operator", []string{"--filter", "price??100", path}, query.ErrBadCondition},
		{"unknown column", []string{"--filter", "nonexistent>100", path}, query.ErrUnknownColumn},
		{"malformed aggregation", []string{"--agg", "price", path}, query.ErrBadAggregation},
		{"unknown aggregation", []string{"--agg", "price=median", path}, query.ErrUnsupportedAggregation},
		{"non numeric aggregation", []string{"--agg", "brand=sum", path}, query.ErrNonNumericValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	if _, err := execute(t, filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Execute() on missing file succeeded, want error")
	}
}

func TestRun_UnsupportedFormat(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	if _, err := execute(t, "-f", "xml", path); err == nil {
		t.Error("Execute() with unsupported format succeeded, want error")
	}
}

func TestRun_BadDelimiter(t *testing.T) {
	path := writeProductsFile(t, "products.csv", productsCSV)

	if _, err := execute(t, "-d", ";;", path); err == nil {
		t.Error("Execute() with multi-character delimiter succeeded, want error")
	}
}
