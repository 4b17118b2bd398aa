package cmd

import (
	"context"

	"github.com/vitruves/fixgen/internal/output"
)

func structuredOutputRequested() bool {
	return output.IsStructured(GetOutputFormat())
}

// printStructuredTo writes data to the context's stdout in the configured
// structured format, applying any jq query carried in ctx.
func printStructuredTo(ctx context.Context, data interface{}) error {
	printer := output.NewPrinter(stdoutFromContext(ctx), GetOutputFormat())
	return printer.Print(ctx, data)
}
