package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vitruves/fixgen/internal/table"
)

// WriteJSON writes the table as a single JSON array of record objects.
// Date cells are rendered in RFC 3339 form.
func WriteJSON(tbl *table.Table, path string) error {
	records := make([]map[string]any, tbl.NumRows())
	for i := range records {
		rec := tbl.Record(i)
		for k, v := range rec {
			if d, ok := v.(time.Time); ok {
				rec[k] = d.Format(time.RFC3339)
			}
		}
		records[i] = rec
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return f.Close()
}

// ReadJSON reads a record-array JSON fixture. Column order follows the key
// order of the first record; numbers come back as float columns and dates
// as strings, the native coercions of the format.
func ReadJSON(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return table.New(), nil
	}

	names, err := firstObjectKeys(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cols := make([]table.Column, len(names))
	for i, name := range names {
		cols[i] = table.Column{Name: name, Kind: jsonKind(records[0][name])}
	}
	tbl := table.New(cols...)
	for _, rec := range records {
		cells := make([]any, len(names))
		for i, name := range names {
			cells[i] = rec[name]
		}
		if err := tbl.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func jsonKind(v any) table.Kind {
	switch v.(type) {
	case bool:
		return table.Bool
	case float64:
		return table.Float
	default:
		return table.String
	}
}

// firstObjectKeys returns the key order of the first object in a JSON array
// of flat records. encoding/json maps drop ordering, so the order is
// recovered from the token stream.
func firstObjectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Opening '[' then '{' of the first record.
	for i := 0; i < 2; i++ {
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	}
	var keys []string
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return keys, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in record", tok)
		}
		keys = append(keys, key)
		// Skip the scalar value.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	}
}
