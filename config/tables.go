package config

import (
	"github.com/tsawler/shiftsheet/reader"
	"github.com/tsawler/shiftsheet/tables"
)

// TablesConfig selects and tunes the table detector.
type TablesConfig struct {
	Detector           string  `json:"detector"`
	MinRows            int     `json:"min_rows"`
	MinCols            int     `json:"min_cols"`
	MinConfidence      float64 `json:"min_confidence"`
	UseLines           bool    `json:"use_lines"`
	AlignmentTolerance float64 `json:"alignment_tolerance"`
	RowTolerance       float64 `json:"row_tolerance"`
	ClusterGap         float64 `json:"cluster_gap"`

	// PhraseGap and RuleThickness tune how page content is read before
	// detection. See [reader.Options].
	PhraseGap     float64 `json:"phrase_gap"`
	RuleThickness float64 `json:"rule_thickness"`
}

// SetDefaults applies sane defaults.
func (c *TablesConfig) SetDefaults() {
	if c.Detector == "" {
		c.Detector = tables.GeometricName
	}
	if c.ClusterGap <= 0 {
		c.ClusterGap = tables.DefaultConfig().ClusterGap
	}
	defaults := reader.DefaultOptions()
	if c.PhraseGap <= 0 {
		c.PhraseGap = defaults.PhraseGap
	}
	if c.RuleThickness <= 0 {
		c.RuleThickness = defaults.RuleThickness
	}
}

// DetectorConfig converts the settings for [tables.Detector.Configure].
func (c TablesConfig) DetectorConfig() tables.Config {
	return tables.Config{
		MinRows:            c.MinRows,
		MinCols:            c.MinCols,
		MinConfidence:      c.MinConfidence,
		UseLines:           c.UseLines,
		AlignmentTolerance: c.AlignmentTolerance,
		RowTolerance:       c.RowTolerance,
		ClusterGap:         c.ClusterGap,
	}
}

// ReaderOptions converts the page reading settings for [reader.Open].
func (c TablesConfig) ReaderOptions() []reader.Option {
	return []reader.Option{
		reader.WithPhraseGap(c.PhraseGap),
		reader.WithRuleThickness(c.RuleThickness),
	}
}

// Validate checks the detector name and its parameters.
func (c TablesConfig) Validate() error {
	if _, err := tables.NewDetector(c.Detector); err != nil {
		return err
	}
	return c.DetectorConfig().Validate()
}
