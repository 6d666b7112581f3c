// Package export renders a normalized schedule table as CSV, Markdown or an
// XLSX workbook. All three formats share the column order of
// [schedule.Table.Columns]: the fixed job columns, the employee name and one
// column per calendar day.
package export
