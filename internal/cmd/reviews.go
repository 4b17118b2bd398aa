package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vitruves/fixgen/internal/export"
	"github.com/vitruves/fixgen/internal/output"
	"github.com/vitruves/fixgen/internal/synth"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Generate the seeded review dataset",
	Long: `Generate the fixed 1000-row review dataset and write it as
test_data/test_reviews.parquet, then report the column schema.

The dataset is drawn from a fixed seed, so every run produces an
identical file.`,
	Example: `  fixgen reviews`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := stdoutFromContext(ctx)
		errw := stderrFromContext(ctx)

		tbl := synth.Reviews(synth.ReviewRows, synth.ReviewSeed)

		stem := filepath.Join("test_data", "test_reviews")
		results, err := export.WriteAll(tbl, stem, []export.Format{export.Parquet})
		if err != nil {
			return err
		}

		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(errw, "Error writing %s to %s: %v\n", res.Format.Label(), res.Path, res.Err)
				continue
			}
			if output.QuietFromContext(ctx) {
				continue
			}
			fmt.Fprintf(out, "Created test data: %s\n", res.Path)
			fmt.Fprintf(out, "Columns: %v\n", tbl.Names())
			fmt.Fprintln(out, "Data types:")
			for _, col := range tbl.Columns() {
				fmt.Fprintf(out, "  %s: %s\n", col.Name, col.Kind)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewsCmd)
}
