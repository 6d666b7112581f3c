package reader

// Options controls how glyphs are regrouped into fragments.
type Options struct {
	// SpaceRatio is the fraction of the font size treated as the width of
	// a space. A gap of at least half a space starts a new word.
	SpaceRatio float64

	// PhraseGap is the largest gap, as a multiple of the font size, that
	// still joins two words into the same fragment. Wider gaps separate
	// table columns.
	PhraseGap float64

	// BaselineTolerance is the largest baseline difference, as a multiple
	// of the font size, for two glyphs to share a line.
	BaselineTolerance float64

	// RuleThickness is the largest width of a filled rectangle that is
	// still read as a ruling line.
	RuleThickness float64
}

// DefaultOptions returns the options used by [Open].
func DefaultOptions() Options {
	return Options{
		SpaceRatio:        0.25,
		PhraseGap:         0.8,
		BaselineTolerance: 0.5,
		RuleThickness:     2.0,
	}
}

// Option configures a [Reader].
type Option func(*Options)

// WithPhraseGap overrides [Options.PhraseGap].
func WithPhraseGap(ratio float64) Option {
	return func(o *Options) {
		if ratio > 0 {
			o.PhraseGap = ratio
		}
	}
}

// WithRuleThickness overrides [Options.RuleThickness].
func WithRuleThickness(pt float64) Option {
	return func(o *Options) {
		if pt > 0 {
			o.RuleThickness = pt
		}
	}
}
