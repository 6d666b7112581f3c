// Package metrics records conversion outcomes. [NopRecorder] is the default;
// [PromRecorder] exports the counters and histograms to Prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/tsawler/shiftsheet/schedule"
)

// Result labels attached to conversion metrics.
const (
	ResultOK               = "ok"
	ResultMalformedLabel   = "malformed_date_label"
	ResultAmbiguousYear    = "ambiguous_year"
	ResultNoGroups         = "no_groups"
	ResultColumnMismatch   = "column_mismatch"
	ResultExtractionFailed = "extraction_failed"
	ResultError            = "error"
)

// Recorder receives one call per finished conversion.
type Recorder interface {
	// ConversionCompleted records the outcome and duration of a conversion.
	ConversionCompleted(result string, elapsed time.Duration)
	// TableEmitted records the size of a successfully converted table.
	TableEmitted(rows, groups int)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) ConversionCompleted(string, time.Duration) {}
func (NopRecorder) TableEmitted(int, int)                     {}

// ResultOf maps a conversion error to its result label.
func ResultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, schedule.ErrExtractionFailed):
		return ResultExtractionFailed
	case errors.Is(err, schedule.ErrMalformedDateLabel):
		return ResultMalformedLabel
	case errors.Is(err, schedule.ErrAmbiguousYear):
		return ResultAmbiguousYear
	case errors.Is(err, schedule.ErrNoGroupsFound):
		return ResultNoGroups
	case errors.Is(err, schedule.ErrColumnCountMismatch):
		return ResultColumnMismatch
	default:
		return ResultError
	}
}
