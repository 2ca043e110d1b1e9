package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyFile is returned when the input has no header row.
var ErrEmptyFile = errors.New("input file has no header row")

// ReadCSV loads a delimited file into a Table. The first record is the
// header; empty fields become null cells.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	t := New(records[0])

	for i, record := range records[1:] {
		row := make([]Cell, len(record))
		for j, field := range record {
			if field == "" {
				row[j] = Null
			} else {
				row[j] = String(field)
			}
		}

		if err := t.AppendRow(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return t, nil
}

// WriteCSV writes the table as a delimited file, creating parent
// directories as needed and overwriting any existing file. Null cells
// are written as empty fields.
func WriteCSV(t *Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(t.Header))

	for _, row := range t.Rows {
		for j, cell := range row {
			record[j] = cell.Value()
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
