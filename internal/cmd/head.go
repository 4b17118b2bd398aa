package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vitruves/fixgen/internal/export"
	"github.com/vitruves/fixgen/internal/output"
	"github.com/vitruves/fixgen/internal/table"
)

var headRows int

var headCmd = &cobra.Command{
	Use:   "head <file>",
	Short: "Show the first rows of a fixture file",
	Long: `Read a fixture file (csv, json, parquet, or xlsx) and print its first
rows. Text output renders a column-aligned table; structured output emits
one record object per row.`,
	Example: `  fixgen head tests/fixtures/sample.csv
  fixgen head tests/fixtures/sample.parquet -n 3
  fixgen head tests/fixtures/sample.json --output json --query '.[].name'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := export.ReadFile(args[0])
		if err != nil {
			return err
		}

		n := headRows
		if n > tbl.NumRows() {
			n = tbl.NumRows()
		}

		if structuredOutputRequested() {
			records := make([]map[string]any, n)
			for i := 0; i < n; i++ {
				records[i] = normalizeRecord(tbl.Record(i))
			}
			return printStructuredTo(cmd.Context(), records)
		}

		rendered := output.Table{Headers: tbl.Names()}
		for i := 0; i < n; i++ {
			row := make([]string, tbl.NumCols())
			for j := range row {
				row[j] = tbl.CellString(i, j)
			}
			rendered.Rows = append(rendered.Rows, row)
		}
		printer := output.NewPrinter(stdoutFromContext(cmd.Context()), output.FormatTable)
		return printer.Print(cmd.Context(), rendered)
	},
}

// normalizeRecord makes record values encoding-friendly for structured
// output; dates become RFC 3339 strings so JSON and YAML agree.
func normalizeRecord(rec map[string]any) map[string]any {
	for k, v := range rec {
		if d, ok := v.(time.Time); ok {
			rec[k] = d.Format(table.DateLayout)
		}
	}
	return rec
}

func init() {
	headCmd.Flags().IntVarP(&headRows, "rows", "n", 10, "Number of rows to show")
	rootCmd.AddCommand(headCmd)
}
