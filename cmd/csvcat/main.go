// Command csvcat filters and aggregates character-separated data files.
//
// It reads a CSV/TSV or parquet file, applies filter conditions in the
// order given, optionally reduces one column to a scalar, and renders
// the result as a grid, CSV, or JSON Lines.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/eugeneliukindev/csvcat/internal/config"
	"github.com/eugeneliukindev/csvcat/internal/output"
	"github.com/eugeneliukindev/csvcat/internal/query"
	"github.com/eugeneliukindev/csvcat/internal/reader"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the resolved command-line flags
type options struct {
	filters   []string
	agg       string
	format    string
	delimiter string
	limit     int
	verbose   bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "csvcat [flags] <file>",
		Short: "Filter and aggregate character-separated data files",
		Long: "csvcat reads a tabular data file (CSV, TSV, or parquet), applies a chain\n" +
			"of row filters, optionally reduces a single column to a scalar, and\n" +
			"renders the result.",
		Example: "  csvcat products.csv\n" +
			"  csvcat --filter 'price>=400' products.csv\n" +
			"  csvcat --filter 'brand=brand1' --agg 'rating=max' products.csv\n" +
			"  csvcat -f jsonl sales.parquet",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil,
		"filter condition, e.g. 'price>=149' (repeatable; operators: >= <= != > < =)")
	cmd.Flags().StringVar(&opts.agg, "agg", "",
		"aggregation, e.g. 'price=max' (operations: sum, avg, min, max, count)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", cfg.Format,
		"output format: grid, csv, jsonl")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", cfg.Delimiter,
		"field delimiter for character-separated input")
	cmd.Flags().IntVar(&opts.limit, "limit", 0,
		"limit number of output rows (0 = unlimited)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"enable debug logging")

	return cmd
}

// run executes the load -> filter -> aggregate -> render pipeline
func run(w io.Writer, path string, opts *options) error {
	logger := newLogger(opts.verbose)

	if opts.limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", opts.limit)
	}
	delim, err := delimiterRune(opts.delimiter)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(opts.format, w)
	if err != nil {
		return err
	}

	table, err := reader.Load(path, delim)
	if err != nil {
		return err
	}
	logger.Debug("table loaded", "path", path, "columns", len(table.Headers), "rows", len(table.Rows))

	proc := query.NewProcessor(table)

	for _, raw := range opts.filters {
		cond, err := query.ParseCondition(raw)
		if err != nil {
			return err
		}
		if _, err := proc.Filter(cond); err != nil {
			return err
		}
		logger.Debug("filter applied", "condition", cond.String(), "rows", len(proc.State().Rows()))
	}

	if opts.agg != "" {
		column, op, err := query.ParseAggregation(opts.agg)
		if err != nil {
			return err
		}
		if _, err := proc.Aggregate(column, op); err != nil {
			return err
		}
		logger.Debug("aggregation applied", "column", column, "operation", op.String())
	}

	return formatter.Format(proc.Headers(), proc.State().Limit(opts.limit))
}

// newFormatter selects the output formatter for a format name
func newFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "grid":
		return output.NewGridFormatter(w), nil
	case "csv":
		return output.NewCSVFormatter(w), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: grid, csv, jsonl)", format)
	}
}

// delimiterRune converts the delimiter flag to a rune, accepting "\t"
// and "tab" for tab-separated input
func delimiterRune(s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}

// newLogger builds the CLI logger; debug messages go to stderr only when
// verbose is set
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
