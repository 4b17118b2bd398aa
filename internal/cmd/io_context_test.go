package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestIOContextRoundTrip(t *testing.T) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}

	ctx := withIO(context.Background(), in, out, errw)

	if stdinFromContext(ctx) != in {
		t.Error("stdin not carried through context")
	}
	if stdoutFromContext(ctx) != out {
		t.Error("stdout not carried through context")
	}
	if stderrFromContext(ctx) != errw {
		t.Error("stderr not carried through context")
	}
}

func TestIOContextDefaults(t *testing.T) {
	ctx := context.Background()
	if stdinFromContext(ctx) != os.Stdin {
		t.Error("expected os.Stdin fallback")
	}
	if stdoutFromContext(ctx) != os.Stdout {
		t.Error("expected os.Stdout fallback")
	}
	if stderrFromContext(nil) != os.Stderr {
		t.Error("expected os.Stderr fallback for nil context")
	}
}
