// Package table reads the delimited-text source files into ordered row
// sequences. Two conventions are supported: the primary CSV files, which
// carry a fixed number of preamble lines to skip, and the external
// tab-separated files, which mark their header and comment lines with a
// leading '#'.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table is an ordered sequence of rows with a named header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Col returns the index of the named header column, or -1 if absent.
func (t *Table) Col(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Get returns the cell at row i under the named column. Missing columns and
// short rows yield the empty string.
func (t *Table) Get(i int, name string) string {
	c := t.Col(name)
	if c < 0 || i < 0 || i >= len(t.Rows) || c >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][c]
}

// ReadCSV reads a comma-separated file with '"' quoting, discarding the
// first skip rows (headers and spacer lines). The file is fully consumed
// and closed before returning.
func ReadCSV(path string, skip int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Row widths are validated downstream.

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if skip > len(records) {
		skip = len(records)
	}
	return records[skip:], nil
}

// ReadHashTabular reads a delimiter-separated file using the '#' header and
// comment conventions: the first non-comment row is the column header, with
// a leading '#' stripped from its first cell; any later row whose first
// cell starts with '#' is a comment and skipped.
func ReadHashTabular(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	t := &Table{}
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		if t.Header == nil {
			header := make([]string, len(rec))
			copy(header, rec)
			header[0] = strings.TrimPrefix(header[0], "#")
			t.Header = header
			continue
		}
		if strings.HasPrefix(rec[0], "#") {
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	if t.Header == nil {
		return nil, fmt.Errorf("%s: no header row found", path)
	}
	return t, nil
}
