package schedule

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal conversion issue.
type WarningCode int

const (
	// WarnYearRollover means the week labels step backwards in time, which
	// happens when they cross from December into January.
	WarnYearRollover WarningCode = iota + 1
	// WarnEmptyGroup means a boundary row is followed directly by another.
	WarnEmptyGroup
	// WarnUnnamedGroup means a boundary row has no description.
	WarnUnnamedGroup
	// WarnOrphanRows means data rows appear before the first boundary row.
	WarnOrphanRows
	// WarnMultipleTables means the extractor found more than one table and
	// only the largest was used.
	WarnMultipleTables
)

// String returns a short identifier for the code.
func (c WarningCode) String() string {
	switch c {
	case WarnYearRollover:
		return "year-rollover"
	case WarnEmptyGroup:
		return "empty-group"
	case WarnUnnamedGroup:
		return "unnamed-group"
	case WarnOrphanRows:
		return "orphan-rows"
	case WarnMultipleTables:
		return "multiple-tables"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found while converting a schedule. The result
// is still usable but may be incomplete.
type Warning struct {
	Code    WarningCode
	Row     int // raw row index, -1 when the warning is not tied to a row
	Message string
}

func (w Warning) String() string {
	if w.Row >= 0 {
		return fmt.Sprintf("%s (row %d): %s", w.Code, w.Row, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single line-per-warning string.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// GroupWarnings reports empty and unnamed groups.
func GroupWarnings(groups []EmployeeGroup) []Warning {
	var warnings []Warning
	for _, g := range groups {
		if g.Name == "" {
			warnings = append(warnings, Warning{
				Code:    WarnUnnamedGroup,
				Row:     g.Boundary,
				Message: "boundary row has no description; its rows get an empty name",
			})
		}
		if g.Len() == 0 {
			warnings = append(warnings, Warning{
				Code:    WarnEmptyGroup,
				Row:     g.Boundary,
				Message: fmt.Sprintf("group %q has no rows", g.Name),
			})
		}
	}
	return warnings
}
