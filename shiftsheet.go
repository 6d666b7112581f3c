// Package shiftsheet converts a weekly work-schedule PDF into a normalized
// table: one row per employee assignment with one cell per calendar day.
//
// Basic usage:
//
//	table, err := shiftsheet.Convert("week-40.pdf")
//	if err != nil {
//	    // handle error
//	}
//	for _, row := range table.Rows {
//	    fmt.Println(row.Name, row.JobNumber, row.Days)
//	}
//
// With options:
//
//	csv, warnings, err := shiftsheet.Open("week-40.pdf").
//	    SkipRows(0).
//	    Year(2024).
//	    CSV()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", shiftsheet.FormatWarnings(warnings))
//	}
//
// Day cells hold true for a scheduled day ("X" on the sheet), false for a
// blank cell and the cell text for anything else. The lower-level schedule
// package exposes each stage of the conversion on its own.
package shiftsheet

import (
	"github.com/tsawler/shiftsheet/schedule"
)

// Convert reads the schedule PDF at path with default settings and returns
// the normalized table.
func Convert(path string) (*schedule.Table, error) {
	t, _, err := Open(path).Table()
	return t, err
}

// Open returns a Converter for the schedule PDF at path. Nothing is read
// until a terminal operation such as Table or CSV is called.
//
// Example:
//
//	table, warnings, err := shiftsheet.Open("week-40.pdf").Table()
func Open(path string) *Converter {
	return &Converter{
		path:    path,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := shiftsheet.Must(shiftsheet.Convert("week-40.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTable is like Must for terminal operations that also return warnings.
// The warnings are discarded.
//
// Example:
//
//	csv := shiftsheet.MustTable(shiftsheet.Open("week-40.pdf").CSV())
func MustTable[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
