// Package table provides the in-memory tabular model shared by the
// cleaning pipeline stages: a header row plus rows of nullable cells.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// Table errors.
var (
	ErrNoSuchColumn = errors.New("no such column")
	ErrRaggedRow    = errors.New("row length does not match header")
)

// Table is a rectangular dataset. Stages produce a new Table rather than
// mutating their input, except for the column-local Apply helpers.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// New creates an empty table with the given header.
func New(header []string) *Table {
	return &Table{Header: append([]string(nil), header...)}
}

// AppendRow adds a row. The row must match the header width.
func (t *Table) AppendRow(row []Cell) error {
	if len(row) != len(t.Header) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRaggedRow, len(row), len(t.Header))
	}

	t.Rows = append(t.Rows, row)

	return nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the named column. When renaming has
// produced duplicate names the last occurrence wins, matching the
// last-write-wins rename policy.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i := len(t.Header) - 1; i >= 0; i-- {
		if t.Header[i] == name {
			return i, true
		}
	}

	return 0, false
}

// ColumnsMatching returns, in header order, every column name for which
// match returns true.
func (t *Table) ColumnsMatching(match func(string) bool) []string {
	var names []string

	for _, name := range t.Header {
		if match(name) {
			names = append(names, name)
		}
	}

	return names
}

// RenameColumns replaces header names per the mapping. Names without a
// mapping entry are kept as-is.
func (t *Table) RenameColumns(mapping map[string]string) {
	for i, name := range t.Header {
		if renamed, ok := mapping[name]; ok {
			t.Header[i] = renamed
		}
	}
}

// MapHeader rewrites every header name through fn.
func (t *Table) MapHeader(fn func(string) string) {
	for i, name := range t.Header {
		t.Header[i] = fn(name)
	}
}

// Select returns a new table holding only the named columns, in the
// given order. Row order is preserved.
func (t *Table) Select(names []string) (*Table, error) {
	indices := make([]int, 0, len(names))

	for _, name := range names {
		idx, ok := t.ColumnIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
		}

		indices = append(indices, idx)
	}

	out := New(names)
	for _, row := range t.Rows {
		selected := make([]Cell, len(indices))
		for i, idx := range indices {
			selected[i] = row[idx]
		}

		out.Rows = append(out.Rows, selected)
	}

	return out, nil
}

// Apply rewrites every cell of the named column through fn.
func (t *Table) Apply(name string, fn func(Cell) Cell) error {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}

	for _, row := range t.Rows {
		row[idx] = fn(row[idx])
	}

	return nil
}

// AddColumn appends a column computed per row. The compute function sees
// the full row and the table header.
func (t *Table) AddColumn(name string, compute func(header []string, row []Cell) Cell) {
	header := append([]string(nil), t.Header...)
	t.Header = append(t.Header, name)

	for i, row := range t.Rows {
		t.Rows[i] = append(row, compute(header, row))
	}
}

// FilterRows returns a new table with only the rows for which keep
// returns true. Row order is preserved.
func (t *Table) FilterRows(keep func(row []Cell) bool) *Table {
	out := New(t.Header)

	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}

	return out
}

// DropColumn returns a new table without the named column.
func (t *Table) DropColumn(name string) (*Table, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}

	header := make([]string, 0, len(t.Header)-1)
	header = append(header, t.Header[:idx]...)
	header = append(header, t.Header[idx+1:]...)

	out := New(header)
	for _, row := range t.Rows {
		cells := make([]Cell, 0, len(row)-1)
		cells = append(cells, row[:idx]...)
		cells = append(cells, row[idx+1:]...)
		out.Rows = append(out.Rows, cells)
	}

	return out, nil
}

// Cell returns the cell at the named column of row i.
func (t *Table) Cell(i int, name string) (Cell, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return Null, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}

	return t.Rows[i][idx], nil
}

// String returns a short description of the table shape.
func (t *Table) String() string {
	return fmt.Sprintf("Table{%d cols, %d rows, header: %s}",
		len(t.Header), len(t.Rows), strings.Join(t.Header, ","))
}
