package entity

import "strings"

// Table is an uploaded sheet: a header row and string cells in file order
type Table struct {
	Headers []string
	Rows    [][]string
	// Numeric marks cells that held a number in the source file, row by row.
	// A nil Numeric treats every cell as text.
	Numeric [][]bool
}

// ColumnIndex returns the position of a header (case-sensitive) or -1
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumns reports whether every named header is present
func (t *Table) HasColumns(names ...string) bool {
	for _, name := range names {
		if t.ColumnIndex(name) < 0 {
			return false
		}
	}
	return true
}

// MissingColumns lists the named headers that are absent
func (t *Table) MissingColumns(names ...string) []string {
	var missing []string
	for _, name := range names {
		if t.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	return missing
}

// Cell returns the trimmed value at row/col; short rows read as empty
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}

// IsNumeric reports whether the cell at row/col was stored as a number
func (t *Table) IsNumeric(row, col int) bool {
	if row < 0 || row >= len(t.Numeric) || col < 0 || col >= len(t.Numeric[row]) {
		return false
	}
	return t.Numeric[row][col]
}

// Head returns at most n rows padded to the header width
func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) || n < 0 {
		n = len(t.Rows)
	}
	head := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(t.Headers))
		copy(row, t.Rows[i])
		head[i] = row
	}
	return head
}
