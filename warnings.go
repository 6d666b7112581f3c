package shiftsheet

import "github.com/tsawler/shiftsheet/schedule"

// Warning is a non-fatal issue found during a conversion.
type Warning = schedule.Warning

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	return schedule.FormatWarnings(warnings)
}
