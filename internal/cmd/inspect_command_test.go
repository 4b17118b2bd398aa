package cmd

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vitruves/fixgen/internal/export"
	"github.com/vitruves/fixgen/internal/synth"
)

// writeFixture exports a 5-row sample dataset and returns the path for ext.
func writeFixture(t *testing.T, ext string) string {
	t.Helper()
	tbl := synth.SamplesAt("sample", 5, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	stem := filepath.Join(t.TempDir(), "sample")
	results, err := export.WriteAll(tbl, stem, nil)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("%s export: %v", res.Format, res.Err)
		}
	}
	return stem + ext
}

func TestHeadCommandJSON(t *testing.T) {
	path := writeFixture(t, ".csv")

	out, _, err := runCLI(t, "head", path, "--output", "json", "-n", "2")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("parse output: %v\n%s", err, out.String())
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["name"] != "sample_item_1" {
		t.Errorf("first record name = %v, want sample_item_1", records[0]["name"])
	}
}

func TestHeadCommandTextTable(t *testing.T) {
	path := writeFixture(t, ".parquet")

	out, _, err := runCLI(t, "head", path, "--output", "text", "-n", "3")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	stdout := out.String()
	if !strings.Contains(stdout, "name") || !strings.Contains(stdout, "sample_item_3") {
		t.Errorf("unexpected table output:\n%s", stdout)
	}
	if strings.Contains(stdout, "sample_item_4") {
		t.Errorf("row limit not applied:\n%s", stdout)
	}
}

func TestHeadCommandWithQuery(t *testing.T) {
	path := writeFixture(t, ".json")

	out, _, err := runCLI(t, "head", path, "--output", "json", "--query", ".[0].name")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `"sample_item_1"` {
		t.Errorf("query output = %q, want %q", got, `"sample_item_1"`)
	}
}

func TestSchemaCommandText(t *testing.T) {
	path := writeFixture(t, ".parquet")

	out, _, err := runCLI(t, "schema", path, "--output", "text")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	stdout := out.String()
	for _, want := range []string{"id: int", "value: float", "flag: bool", "category: string"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("schema output missing %q:\n%s", want, stdout)
		}
	}
}

func TestSchemaCommandJSON(t *testing.T) {
	path := writeFixture(t, ".csv")

	out, _, err := runCLI(t, "schema", path, "--output", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var cols []columnInfo
	if err := json.Unmarshal(out.Bytes(), &cols); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(cols) != 6 {
		t.Fatalf("got %d columns, want 6", len(cols))
	}
	if cols[0].Name != "id" {
		t.Errorf("first column = %q, want id", cols[0].Name)
	}
}

func TestCountCommand(t *testing.T) {
	path := writeFixture(t, ".xlsx")

	out, _, err := runCLI(t, "count", path, "--output", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var got map[string]int
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if got["rows"] != 5 {
		t.Errorf("rows = %d, want 5", got["rows"])
	}
}

func TestHeadCommandMissingFile(t *testing.T) {
	_, _, err := runCLI(t, "head", filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected error for missing fixture")
	}
}
