// Package export serializes tables to fixture files and reads them back.
// Four sibling formats share a path stem and differ only by extension.
// Each export attempt is isolated: a failing format is recorded in its
// Result and never prevents the remaining formats from being written.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vitruves/fixgen/internal/table"
)

// Format names one supported fixture file format.
type Format string

const (
	CSV     Format = "csv"
	JSON    Format = "json"
	Parquet Format = "parquet"
	XLSX    Format = "xlsx"
)

// All lists the supported formats in export order.
var All = []Format{CSV, JSON, Parquet, XLSX}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Label returns the format name used in user-facing messages.
func (f Format) Label() string {
	switch f {
	case CSV, JSON:
		return strings.ToUpper(string(f))
	case Parquet:
		return "Parquet"
	case XLSX:
		return "Excel"
	default:
		return string(f)
	}
}

// ParseFormats parses a comma-separated format list. Empty segments are
// ignored; an empty or all-empty list means all formats.
func ParseFormats(s string) ([]Format, error) {
	seen := map[Format]bool{}
	for _, part := range strings.Split(s, ",") {
		name := Format(strings.ToLower(strings.TrimSpace(part)))
		if name == "" {
			continue
		}
		switch name {
		case CSV, JSON, Parquet, XLSX:
			seen[name] = true
		default:
			return nil, fmt.Errorf("invalid format %q (expected csv|json|parquet|xlsx)", part)
		}
	}
	if len(seen) == 0 {
		return append([]Format(nil), All...), nil
	}
	// Preserve canonical export order regardless of flag order.
	var out []Format
	for _, f := range All {
		if seen[f] {
			out = append(out, f)
		}
	}
	return out, nil
}

// Result records one export attempt.
type Result struct {
	Format Format
	Path   string
	Err    error
}

// writers is indirected so tests can force a single format to fail.
var writers = map[Format]func(*table.Table, string) error{
	CSV:     WriteCSV,
	JSON:    WriteJSON,
	Parquet: WriteParquet,
	XLSX:    WriteXLSX,
}

// WriteAll exports tbl to stem+ext for each requested format, in canonical
// order. The stem's directory is created first; a failure there aborts the
// whole export. Individual format failures are captured per Result.
func WriteAll(tbl *table.Table, stem string, formats []Format) ([]Result, error) {
	if dir := filepath.Dir(stem); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if len(formats) == 0 {
		formats = All
	}
	results := make([]Result, 0, len(formats))
	for _, f := range formats {
		path := stem + f.Ext()
		results = append(results, Result{Format: f, Path: path, Err: writers[f](tbl, path)})
	}
	return results, nil
}

// ReadFile reads a fixture back into a table, dispatching on the file
// extension. Text formats surface every column as strings; parquet keeps
// its stored types.
func ReadFile(path string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".json":
		return ReadJSON(path)
	case ".parquet":
		return ReadParquet(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported fixture format: %s", path)
	}
}
