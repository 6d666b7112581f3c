package config

import "fmt"

// ScheduleConfig controls how the extracted grid is read.
type ScheduleConfig struct {
	// SkipRows is the number of grid rows below the header dropped before
	// group detection. The weekday sub-header is one such row.
	SkipRows int `json:"skip_rows"`
	// RequireGroupName stops rows with an empty description from being
	// treated as employee boundaries.
	RequireGroupName bool `json:"require_group_name"`
	// Year is used when the page text carries no publish date. Zero means
	// the publish date is required.
	Year int `json:"year"`
	// LabelColumns are the header columns holding the two week labels.
	LabelColumns [2]int `json:"label_columns"`
}

// Validate checks the schedule settings.
func (c ScheduleConfig) Validate() error {
	if c.SkipRows < 0 {
		return fmt.Errorf("skip_rows must not be negative, got %d", c.SkipRows)
	}
	if c.Year < 0 || c.Year > 9999 {
		return fmt.Errorf("year out of range: %d", c.Year)
	}
	for _, col := range c.LabelColumns {
		if col < 0 {
			return fmt.Errorf("label column must not be negative, got %d", col)
		}
	}
	if c.LabelColumns[0] == c.LabelColumns[1] {
		return fmt.Errorf("label columns must differ, both are %d", c.LabelColumns[0])
	}
	return nil
}
