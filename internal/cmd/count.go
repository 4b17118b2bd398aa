package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitruves/fixgen/internal/export"
)

var countCmd = &cobra.Command{
	Use:   "count <file>",
	Short: "Show the row count of a fixture file",
	Example: `  fixgen count tests/fixtures/sample.csv
  fixgen count tests/fixtures/sample.parquet --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := export.ReadFile(args[0])
		if err != nil {
			return err
		}

		if structuredOutputRequested() {
			return printStructuredTo(cmd.Context(), map[string]int{"rows": tbl.NumRows()})
		}

		_, err = fmt.Fprintln(stdoutFromContext(cmd.Context()), tbl.NumRows())
		return err
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
