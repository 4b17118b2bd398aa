package cmd

import (
	"context"
	"io"
	"os"
)

// Commands resolve their streams through the context rather than touching
// os.Stdout directly, so the CLI harness can run them against buffers.
// Export reports go to out, per-format failures to err.

type ioStreamsKey struct{}

type ioStreams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func withIO(ctx context.Context, in io.Reader, out, err io.Writer) context.Context {
	return context.WithValue(ctx, ioStreamsKey{}, ioStreams{in: in, out: out, err: err})
}

// stdinFromContext returns the context's input stream, falling back to
// os.Stdin when none was attached.
func stdinFromContext(ctx context.Context) io.Reader {
	if ctx != nil {
		if s, ok := ctx.Value(ioStreamsKey{}).(ioStreams); ok && s.in != nil {
			return s.in
		}
	}
	return os.Stdin
}

// stdoutFromContext returns the stream for success reports and inspection
// output, falling back to os.Stdout.
func stdoutFromContext(ctx context.Context) io.Writer {
	if ctx != nil {
		if s, ok := ctx.Value(ioStreamsKey{}).(ioStreams); ok && s.out != nil {
			return s.out
		}
	}
	return os.Stdout
}

// stderrFromContext returns the stream for export failures and command
// errors, falling back to os.Stderr.
func stderrFromContext(ctx context.Context) io.Writer {
	if ctx != nil {
		if s, ok := ctx.Value(ioStreamsKey{}).(ioStreams); ok && s.err != nil {
			return s.err
		}
	}
	return os.Stderr
}
