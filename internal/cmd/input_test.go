package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.jq")
	if err := os.WriteFile(path, []byte(" .[].id \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readInputSource(path, nil)
	if err != nil {
		t.Fatalf("readInputSource: %v", err)
	}
	if got != ".[].id" {
		t.Errorf("got %q, want %q", got, ".[].id")
	}
}

func TestReadInputSourceFromStdin(t *testing.T) {
	got, err := readInputSource("-", strings.NewReader(".[0]\n"))
	if err != nil {
		t.Fatalf("readInputSource: %v", err)
	}
	if got != ".[0]" {
		t.Errorf("got %q, want %q", got, ".[0]")
	}
}

func TestReadInputSourceEmpty(t *testing.T) {
	if _, err := readInputSource("  ", nil); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestReadInputSourceMissingFile(t *testing.T) {
	if _, err := readInputSource(filepath.Join(t.TempDir(), "absent.jq"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}
