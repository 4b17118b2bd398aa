package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitruves/fixgen/internal/export"
)

type columnInfo struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Show the column schema of a fixture file",
	Long: `Read a fixture file and print its column names and types in column
order. Text formats report every column as string; parquet keeps the
stored types.`,
	Example: `  fixgen schema test_data/test_reviews.parquet
  fixgen schema tests/fixtures/sample.csv --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := export.ReadFile(args[0])
		if err != nil {
			return err
		}

		cols := make([]columnInfo, tbl.NumCols())
		for i, col := range tbl.Columns() {
			cols[i] = columnInfo{Name: col.Name, Type: col.Kind.String()}
		}

		if structuredOutputRequested() {
			return printStructuredTo(cmd.Context(), cols)
		}

		out := stdoutFromContext(cmd.Context())
		for _, col := range cols {
			fmt.Fprintf(out, "%s: %s\n", col.Name, col.Type)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
