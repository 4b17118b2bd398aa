package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"ndjson", FormatNDJSON, false},
		{"table", FormatTable, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintJSONWithQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	ctx := WithQuery(context.Background(), ".[].id")

	data := []map[string]any{{"id": 1}, {"id": 2}}
	if err := p.Print(ctx, data); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "1\n2" {
		t.Errorf("query output = %q, want %q", got, "1\n2")
	}
}

func TestPrintJSONInvalidQuery(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, FormatJSON)
	ctx := WithQuery(context.Background(), ".[")
	if err := p.Print(ctx, []int{1}); err == nil {
		t.Fatal("expected error for malformed query")
	}
}

func TestPrintNDJSONEncodesSliceElements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatNDJSON)

	data := []map[string]any{{"id": 1}, {"id": 2}}
	if err := p.Print(context.Background(), data); err != nil {
		t.Fatalf("Print: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Errorf("line %q is not valid JSON: %v", line, err)
		}
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	data := Table{
		Headers: []string{"id", "name"},
		Rows:    [][]string{{"1", "sample_item_1"}},
	}
	if err := p.Print(context.Background(), data); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "id") || !strings.Contains(out, "sample_item_1") {
		t.Errorf("unexpected table output: %q", out)
	}
}

func TestPrintTextMapSortsKeys(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	if err := p.Print(context.Background(), map[string]any{"b": 2, "a": 1}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "a: 1\nb: 2\n"
	if buf.String() != want {
		t.Errorf("text output = %q, want %q", buf.String(), want)
	}
}
