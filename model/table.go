package model

import (
	"fmt"
	"strings"
)

// Table represents a table with cells organized in rows and columns
type Table struct {
	Rows       [][]Cell
	Grid       *TableGrid
	BBox       BBox
	HasGrid    bool    // Whether table has visible gridlines
	Confidence float64 // Detection confidence (0-1)
}

// NewTable creates a new table with given dimensions
func NewTable(rows, cols int) *Table {
	table := &Table{
		Rows:       make([][]Cell, rows),
		Confidence: 1.0,
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
	}
	return table
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// CellCount returns rows times columns.
func (t *Table) CellCount() int {
	return t.RowCount() * t.ColCount()
}

// GetCell returns the cell at the given row and column (0-indexed)
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// SetCell sets the cell at the given position
func (t *Table) SetCell(row, col int, cell Cell) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row][col] = cell
	return nil
}

// Texts returns the cell text of every row.
func (t *Table) Texts() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = cell.Text
		}
	}
	return out
}

// ToMarkdown converts the table to markdown format. The first row is used as
// the header.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []Cell) {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.Rows[0])
	for range t.Rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

// Cell represents a table cell
type Cell struct {
	Text string
	BBox BBox
}

// TableGrid represents the detected grid structure
type TableGrid struct {
	Rows      []float64 // Y-coordinates of row boundaries, top to bottom
	Cols      []float64 // X-coordinates of column boundaries, left to right
	HasHLines []bool    // Horizontal line presence
	HasVLines []bool    // Vertical line presence
}

// NewTableGrid creates a new empty grid
func NewTableGrid() *TableGrid {
	return &TableGrid{
		Rows:      make([]float64, 0),
		Cols:      make([]float64, 0),
		HasHLines: make([]bool, 0),
		HasVLines: make([]bool, 0),
	}
}

// RowCount returns the number of rows
func (g *TableGrid) RowCount() int {
	if len(g.Rows) <= 1 {
		return 0
	}
	return len(g.Rows) - 1
}

// ColCount returns the number of columns
func (g *TableGrid) ColCount() int {
	if len(g.Cols) <= 1 {
		return 0
	}
	return len(g.Cols) - 1
}

// GetCellBBox returns the bounding box for a cell
func (g *TableGrid) GetCellBBox(row, col int) BBox {
	if row < 0 || row >= g.RowCount() || col < 0 || col >= g.ColCount() {
		return BBox{}
	}
	return BBox{
		X:      g.Cols[col],
		Y:      g.Rows[row+1],
		Width:  g.Cols[col+1] - g.Cols[col],
		Height: g.Rows[row] - g.Rows[row+1],
	}
}

// FindCell returns the row and column of the cell containing p, or -1 for
// both when p lies outside the grid.
func (g *TableGrid) FindCell(p Point) (row, col int) {
	row, col = -1, -1
	for i := 0; i < g.RowCount(); i++ {
		if p.Y <= g.Rows[i] && p.Y >= g.Rows[i+1] {
			row = i
			break
		}
	}
	for i := 0; i < g.ColCount(); i++ {
		if p.X >= g.Cols[i] && p.X <= g.Cols[i+1] {
			col = i
			break
		}
	}
	if row < 0 || col < 0 {
		return -1, -1
	}
	return row, col
}

// BBox returns the area covered by the grid.
func (g *TableGrid) BBox() BBox {
	if g.RowCount() == 0 || g.ColCount() == 0 {
		return BBox{}
	}
	return BBox{
		X:      g.Cols[0],
		Y:      g.Rows[len(g.Rows)-1],
		Width:  g.Cols[len(g.Cols)-1] - g.Cols[0],
		Height: g.Rows[0] - g.Rows[len(g.Rows)-1],
	}
}
