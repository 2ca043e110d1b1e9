package table

import "strconv"

// Cell holds a single table value. A null cell has no value and writes
// out as an empty field.
type Cell struct {
	value string
	null  bool
}

// Null is the absent value.
var Null = Cell{null: true}

// String returns a cell holding s. An empty string is a value, not null;
// use Null for absent values.
func String(s string) Cell {
	return Cell{value: s}
}

// Int returns a cell holding the decimal representation of n.
func Int(n int) Cell {
	return Cell{value: strconv.Itoa(n)}
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return c.null
}

// Value returns the cell's text value. Null cells return "".
func (c Cell) Value() string {
	if c.null {
		return ""
	}

	return c.value
}

// AsInt parses the cell as a decimal integer. The second return is false
// for null cells and for values that are not integers.
func (c Cell) AsInt() (int, bool) {
	if c.null {
		return 0, false
	}

	n, err := strconv.Atoi(c.value)
	if err != nil {
		return 0, false
	}

	return n, true
}
