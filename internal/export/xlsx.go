package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vitruves/fixgen/internal/table"
)

// WriteXLSX writes the table as a single-sheet spreadsheet named after the
// dataset, with a header row. Dates are written in table.DateLayout form.
func WriteXLSX(tbl *table.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := datasetName(path)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]any, tbl.NumCols())
	for i, name := range tbl.Names() {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < tbl.NumRows(); i++ {
		row := make([]any, tbl.NumCols())
		for j := range row {
			if d, ok := tbl.Cell(i, j).(time.Time); ok {
				row[j] = d.Format(table.DateLayout)
			} else {
				row[j] = tbl.Cell(i, j)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// ReadXLSX reads the first sheet of a spreadsheet fixture; every column
// comes back as a string column.
func ReadXLSX(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading %s: missing header row", path)
	}

	header := rows[0]
	cols := make([]table.Column, len(header))
	for i, name := range header {
		cols[i] = table.Column{Name: name, Kind: table.String}
	}
	tbl := table.New(cols...)
	for _, row := range rows[1:] {
		// GetRows trims trailing empty cells.
		cells := make([]any, len(header))
		for i := range cells {
			if i < len(row) {
				cells[i] = row[i]
			} else {
				cells[i] = ""
			}
		}
		if err := tbl.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
