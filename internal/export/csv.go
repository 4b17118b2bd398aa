package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/vitruves/fixgen/internal/table"
)

// WriteCSV writes the table as RFC 4180 CSV with a header row.
func WriteCSV(tbl *table.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(tbl.Names()); err != nil {
		return err
	}
	record := make([]string, tbl.NumCols())
	for i := 0; i < tbl.NumRows(); i++ {
		for j := range record {
			record[j] = tbl.CellString(i, j)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// ReadCSV reads a CSV fixture; every column comes back as a string column.
func ReadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading %s: missing header row", path)
	}

	cols := make([]table.Column, len(records[0]))
	for i, name := range records[0] {
		cols[i] = table.Column{Name: name, Kind: table.String}
	}
	tbl := table.New(cols...)
	for _, record := range records[1:] {
		cells := make([]any, len(record))
		for i, v := range record {
			cells[i] = v
		}
		if err := tbl.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
