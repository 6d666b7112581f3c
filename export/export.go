package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/shiftsheet/schedule"
)

// SheetName is the worksheet written by [WriteXLSX].
const SheetName = "Schedule"

// WriteCSV writes t as CSV with a header row.
func WriteCSV(w io.Writer, t *schedule.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("csv rows: %w", err)
	}
	return nil
}

// CSV returns t rendered by [WriteCSV].
func CSV(t *schedule.Table) (string, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Markdown renders t as a GitHub-flavored Markdown table.
func Markdown(t *schedule.Table) string {
	var sb strings.Builder
	writeRow := func(cells []string) {
		for _, c := range cells {
			sb.WriteString("| ")
			sb.WriteString(escapeMarkdown(c))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	cols := t.Columns()
	writeRow(cols)
	for range cols {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, rec := range t.Records() {
		writeRow(rec)
	}
	return sb.String()
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// WriteXLSX writes t as a single-sheet workbook. Scheduled/unscheduled day
// cells are stored as native booleans; free text stays a string.
func WriteXLSX(w io.Writer, t *schedule.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	for i, h := range t.Columns() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("xlsx header: %w", err)
		}
	}

	for r, row := range t.Rows {
		values := []any{row.JobNumber, row.Description, row.Super, row.MixDescription, row.Shift, row.Name}
		for _, d := range row.Days {
			if d.IsBool() {
				values = append(values, d.Bool)
			} else {
				values = append(values, d.Text)
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("xlsx row %d: %w", r, err)
		}
	}

	fixed := len(schedule.FixedColumns)
	last, _ := excelize.ColumnNumberToName(fixed)
	_ = f.SetColWidth(SheetName, "A", last, 18)
	if n := len(t.Dates); n > 0 {
		first, _ := excelize.ColumnNumberToName(fixed + 1)
		end, _ := excelize.ColumnNumberToName(fixed + n)
		_ = f.SetColWidth(SheetName, first, end, 12)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// XLSX returns the workbook written by [WriteXLSX].
func XLSX(t *schedule.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
