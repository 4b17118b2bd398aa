package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runCLI executes the root command with the given args against buffer-backed
// IO and an empty temp config, restoring all CLI state afterwards.
func runCLI(t *testing.T, args ...string) (out, errBuf *bytes.Buffer, err error) {
	t.Helper()
	restore := snapshotCLIState()
	t.Cleanup(restore)

	out = &bytes.Buffer{}
	errBuf = &bytes.Buffer{}
	in := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errBuf)
	rootCmd.SetIn(in)
	rootCmd.SetContext(withIO(context.Background(), in, out, errBuf))

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err = rootCmd.Execute()
	return out, errBuf, err
}

func newTestBuffers() (out, errBuf, in *bytes.Buffer) {
	return &bytes.Buffer{}, &bytes.Buffer{}, &bytes.Buffer{}
}

func snapshotCLIState() func() {
	prevOutputFmt := outputFmt
	prevOutputType := outputType
	prevConfig := configFile
	prevQueryExpr := queryExpr
	prevQueryFile := queryFile
	prevErrorFmt := errorFmt
	prevQuiet := quietFlag
	prevCfg := cfg
	prevBaseDir := samplesBaseDir
	prevRows := samplesRows
	prevRows2 := samples2Rows
	prevFormats := samplesFormats
	prevHeadRows := headRows
	prevNow := nowFunc

	prevOut := rootCmd.OutOrStdout()
	prevErr := rootCmd.ErrOrStderr()
	prevIn := rootCmd.InOrStdin()
	prevCtx := rootCmd.Context()

	return func() {
		outputFmt = prevOutputFmt
		outputType = prevOutputType
		configFile = prevConfig
		queryExpr = prevQueryExpr
		queryFile = prevQueryFile
		errorFmt = prevErrorFmt
		quietFlag = prevQuiet
		cfg = prevCfg
		samplesBaseDir = prevBaseDir
		samplesRows = prevRows
		samples2Rows = prevRows2
		samplesFormats = prevFormats
		headRows = prevHeadRows
		nowFunc = prevNow

		rootCmd.SetOut(prevOut)
		rootCmd.SetErr(prevErr)
		rootCmd.SetIn(prevIn)
		rootCmd.SetContext(prevCtx)
		rootCmd.SetArgs(nil)
		resetFlagChanges(rootCmd)
	}
}

func resetFlagChanges(c *cobra.Command) {
	reset := func(f *pflag.Flag) { f.Changed = false }
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlagChanges(sub)
	}
}

// pinnedNow swaps nowFunc for the duration of the test.
func pinnedNow(t *testing.T, day time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return day }
	t.Cleanup(func() { nowFunc = prev })
}
