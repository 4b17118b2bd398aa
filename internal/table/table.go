// Package table holds the in-memory tabular model shared by the dataset
// synthesizers and the multi-format exporters. A Table is an ordered set of
// named, typed columns with a common row count; column order is significant
// and preserved by every text-based export.
package table

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the semantic type of a column.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Bool
	Date
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Date:
		return "date"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column is a named, typed column header.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"-"`
}

// Table is row-major storage behind an ordered column schema.
// Cell values are int64, float64, string, bool, or time.Time
// according to the column kind.
type Table struct {
	cols []Column
	rows [][]any
}

// New creates an empty table with the given columns.
func New(cols ...Column) *Table {
	return &Table{cols: append([]Column(nil), cols...)}
}

// Columns returns a copy of the column schema.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.cols...)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// AppendRow appends one row. The number of cells must match the column
// count and each cell must match its column kind; int is widened to int64.
func (t *Table) AppendRow(cells ...any) error {
	if len(cells) != len(t.cols) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.cols))
	}
	row := make([]any, len(cells))
	for i, cell := range cells {
		v, err := coerce(t.cols[i], cell)
		if err != nil {
			return err
		}
		row[i] = v
	}
	t.rows = append(t.rows, row)
	return nil
}

// MustAppendRow is AppendRow for rows built from literals; it panics on a
// schema mismatch, which is always a programming error.
func (t *Table) MustAppendRow(cells ...any) {
	if err := t.AppendRow(cells...); err != nil {
		panic(err)
	}
}

func coerce(col Column, cell any) (any, error) {
	switch col.Kind {
	case Int:
		switch v := cell.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		}
	case Float:
		if v, ok := cell.(float64); ok {
			return v, nil
		}
	case String:
		if v, ok := cell.(string); ok {
			return v, nil
		}
	case Bool:
		if v, ok := cell.(bool); ok {
			return v, nil
		}
	case Date:
		if v, ok := cell.(time.Time); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("column %s: %T is not a %s value", col.Name, cell, col.Kind)
}

// Cell returns the value at (row, col).
func (t *Table) Cell(row, col int) any {
	return t.rows[row][col]
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []any {
	return append([]any(nil), t.rows[i]...)
}

// DateLayout is the textual form used for date cells in delimited output.
const DateLayout = "2006-01-02"

// CellString renders the value at (row, col) for delimited text output.
// Dates use DateLayout; floats use their shortest exact representation.
func (t *Table) CellString(row, col int) string {
	switch v := t.rows[row][col].(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(DateLayout)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Record returns row i as an ordered-by-schema map of column name to value.
func (t *Table) Record(i int) map[string]any {
	rec := make(map[string]any, len(t.cols))
	for j, c := range t.cols {
		rec[c.Name] = t.rows[i][j]
	}
	return rec
}

// Records returns all rows as maps of column name to value.
func (t *Table) Records() []map[string]any {
	recs := make([]map[string]any, t.NumRows())
	for i := range t.rows {
		recs[i] = t.Record(i)
	}
	return recs
}
