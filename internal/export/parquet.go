package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vitruves/fixgen/internal/table"
)

// WriteParquet writes the table as a parquet file. The schema is derived
// from the column kinds; date columns are stored as strings in
// table.DateLayout form. Note parquet-go lays group fields out in name
// order, so the physical column order is alphabetical.
func WriteParquet(tbl *table.Table, path string) error {
	group := parquet.Group{}
	for _, col := range tbl.Columns() {
		group[col.Name] = parquetNode(col.Kind)
	}
	schema := parquet.NewSchema(datasetName(path), group)

	records := make([]map[string]any, tbl.NumRows())
	for i := range records {
		rec := tbl.Record(i)
		for k, v := range rec {
			if d, ok := v.(time.Time); ok {
				rec[k] = d.Format(table.DateLayout)
			}
		}
		records[i] = rec
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := parquet.NewGenericWriter[map[string]any](f, schema)
	if len(records) > 0 {
		if _, err := w.Write(records); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return f.Close()
}

func parquetNode(kind table.Kind) parquet.Node {
	switch kind {
	case table.Int:
		return parquet.Int(64)
	case table.Float:
		return parquet.Leaf(parquet.DoubleType)
	case table.Bool:
		return parquet.Leaf(parquet.BooleanType)
	default:
		return parquet.String()
	}
}

// ReadParquet reads a parquet fixture into a table. Column order follows
// the stored schema.
func ReadParquet(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := parquet.NewReader(f)
	defer r.Close()

	fields := r.Schema().Fields()
	cols := make([]table.Column, len(fields))
	for i, field := range fields {
		cols[i] = table.Column{Name: field.Name(), Kind: parquetKind(field.Type().Kind())}
	}
	tbl := table.New(cols...)

	for {
		record := map[string]any{}
		if err := r.Read(&record); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		cells := make([]any, len(cols))
		for i, col := range cols {
			cells[i] = normalizeParquetValue(record[col.Name])
		}
		if err := tbl.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func parquetKind(kind parquet.Kind) table.Kind {
	switch kind {
	case parquet.Boolean:
		return table.Bool
	case parquet.Int32, parquet.Int64:
		return table.Int
	case parquet.Float, parquet.Double:
		return table.Float
	default:
		return table.String
	}
}

func normalizeParquetValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case int32:
		return int64(val)
	case float32:
		return float64(val)
	default:
		return v
	}
}

func datasetName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
