package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitruves/fixgen/internal/export"
	"github.com/vitruves/fixgen/internal/output"
	"github.com/vitruves/fixgen/internal/synth"
)

var (
	samplesBaseDir string
	samplesRows    int
	samples2Rows   int
	samplesFormats string
)

// nowFunc is swapped in tests to pin the reference day.
var nowFunc = time.Now

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Generate the sample fixture datasets",
	Long: `Generate the 'sample' and 'sample2' datasets and export each to CSV,
JSON, Parquet, and Excel files under the base directory.

Each format is attempted independently: a failing export is reported on
stderr and does not prevent the remaining formats from being written. The
command exits zero even when individual exports fail.`,
	Example: `  # Default fixture set under tests/fixtures
  fixgen samples

  # Larger datasets in a custom directory
  fixgen samples --base-dir /tmp/fixtures --sample-rows 50 --sample2-rows 80

  # Only the text formats
  fixgen samples --formats csv,json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := samplesBaseDir
		if !flagChanged(cmd, "base-dir") && cfg != nil && cfg.BaseDir != "" {
			baseDir = cfg.BaseDir
		}
		rows := samplesRows
		if !flagChanged(cmd, "sample-rows") && cfg != nil && cfg.SampleRows > 0 {
			rows = cfg.SampleRows
		}
		rows2 := samples2Rows
		if !flagChanged(cmd, "sample2-rows") && cfg != nil && cfg.Sample2Rows > 0 {
			rows2 = cfg.Sample2Rows
		}
		if rows < 0 || rows2 < 0 {
			return fmt.Errorf("row counts must be non-negative (got %d, %d)", rows, rows2)
		}

		formats, err := export.ParseFormats(samplesFormats)
		if err != nil {
			return err
		}

		today := nowFunc()
		for _, ds := range []struct {
			name string
			rows int
		}{
			{"sample", rows},
			{"sample2", rows2},
		} {
			tbl := synth.SamplesAt(ds.name, ds.rows, today)
			results, err := export.WriteAll(tbl, filepath.Join(baseDir, ds.name), formats)
			if err != nil {
				return err
			}
			reportResults(cmd, results)
		}
		return nil
	},
}

// reportResults prints one line per export attempt: successes on stdout
// (suppressed by --quiet), failures on stderr. Failures never make the
// command itself fail.
func reportResults(cmd *cobra.Command, results []export.Result) {
	ctx := cmd.Context()
	out := stdoutFromContext(ctx)
	errw := stderrFromContext(ctx)
	quiet := output.QuietFromContext(ctx)

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(errw, "Error writing %s to %s: %v\n", res.Format.Label(), res.Path, res.Err)
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "Written %s: %s\n", res.Format.Label(), res.Path)
		}
	}
}

func init() {
	samplesCmd.Flags().StringVar(&samplesBaseDir, "base-dir", filepath.Join("tests", "fixtures"), "Base directory for fixture files")
	samplesCmd.Flags().IntVar(&samplesRows, "sample-rows", 5, "Number of rows for the 'sample' dataset")
	samplesCmd.Flags().IntVar(&samples2Rows, "sample2-rows", 8, "Number of rows for the 'sample2' dataset")
	samplesCmd.Flags().StringVar(&samplesFormats, "formats", "", "Comma-separated formats to write (default all: csv,json,parquet,xlsx)")
	rootCmd.AddCommand(samplesCmd)
}
