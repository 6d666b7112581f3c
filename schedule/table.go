package schedule

import (
	"strings"
)

// Fixed semantic columns of the raw grid. Day columns start at FirstDayColumn
// and run up to, but not including, the trailing column.
const (
	ColJobNumber = iota
	ColDescription
	ColSuper
	ColMixDescription
	ColShift

	FirstDayColumn

	// trailingColumns is the number of unused columns after the last day.
	trailingColumns = 1
)

// FixedColumns names the leading columns of a normalized table, in order.
var FixedColumns = []string{"job_number", "description", "super", "mix_description", "shift", "name"}

// RawTable is the grid produced by a table extractor: the header labels and
// the rows below them. An empty string is a missing cell.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Cell returns the trimmed value at (row, col), or "" when out of range.
func (t *RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}

// HeaderLabel returns the trimmed header label at col, or "" when out of range.
func (t *RawTable) HeaderLabel(col int) string {
	if col < 0 || col >= len(t.Header) {
		return ""
	}
	return strings.TrimSpace(t.Header[col])
}

// RowCount returns the number of grid rows, excluding the header.
func (t *RawTable) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the width of the first row, or of the header when the
// grid is empty.
func (t *RawTable) ColCount() int {
	if len(t.Rows) > 0 {
		return len(t.Rows[0])
	}
	return len(t.Header)
}

// DayColumnCount returns how many day columns a grid of the given width has.
// It is negative when the grid is too narrow to hold any.
func DayColumnCount(width int) int {
	return width - FirstDayColumn - trailingColumns
}

// SkipRows returns a copy of t without its first n grid rows. The header is
// shared with t.
func (t *RawTable) SkipRows(n int) *RawTable {
	if n <= 0 {
		return t
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &RawTable{
		Header: t.Header,
		Rows:   t.Rows[n:],
	}
}

// Row is one normalized schedule line: a job assignment for a named employee
// with one value per date of the owning table's window.
type Row struct {
	// Source is the index of the row in the raw grid.
	Source int

	JobNumber      string
	Description    string
	Super          string
	MixDescription string
	Shift          string
	Name           string

	Days []Value
}

// Table is the normalized schedule.
type Table struct {
	Dates DateWindow
	Rows  []Row

	// Orphans lists raw row indices that appeared before the first boundary
	// row. They belong to no employee and are not part of Rows.
	Orphans []int
}

// DateLayout is the layout used for date column names.
const DateLayout = "2006-01-02"

// Columns returns the column names of the normalized table.
func (t *Table) Columns() []string {
	cols := make([]string, 0, len(FixedColumns)+len(t.Dates))
	cols = append(cols, FixedColumns...)
	cols = append(cols, t.Dates.Labels(DateLayout)...)
	return cols
}

// Records flattens the table to string records matching Columns. The header
// is not included.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rec := make([]string, 0, len(FixedColumns)+len(r.Days))
		rec = append(rec, r.JobNumber, r.Description, r.Super, r.MixDescription, r.Shift, r.Name)
		for _, v := range r.Days {
			rec = append(rec, v.String())
		}
		records = append(records, rec)
	}
	return records
}

// RowsFor returns the rows assigned to the named employee, in table order.
func (t *Table) RowsFor(name string) []Row {
	var rows []Row
	for _, r := range t.Rows {
		if r.Name == name {
			rows = append(rows, r)
		}
	}
	return rows
}

// Names returns the distinct employee names in first-seen order.
func (t *Table) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range t.Rows {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	return names
}
