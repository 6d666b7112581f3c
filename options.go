package shiftsheet

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/shiftsheet/metrics"
	"github.com/tsawler/shiftsheet/reader"
	"github.com/tsawler/shiftsheet/schedule"
	"github.com/tsawler/shiftsheet/tables"
)

// convertOptions holds the configuration of a Converter.
type convertOptions struct {
	// Schedule reading
	skipRows    int
	requireName bool
	year        int
	labelCols   [2]int

	// Table detection
	detector     string
	detectorConf tables.Config
	readerOpts   []reader.Option

	// Collaborators; nil means read the PDF with PDFSource
	text  schedule.TextExtractor
	table schedule.TableExtractor

	// Ambient
	log      zerolog.Logger
	logSet   bool
	recorder metrics.Recorder
}

// defaultOptions returns the options used by Open.
func defaultOptions() convertOptions {
	conf := tables.DefaultConfig()
	conf.MinCols = schedule.FirstDayColumn + 2
	return convertOptions{
		skipRows:     schedule.DefaultSkipRows,
		labelCols:    [2]int{schedule.DefaultLabelColumnA, schedule.DefaultLabelColumnB},
		detector:     tables.GeometricName,
		detectorConf: conf,
		log:          zerolog.Nop(),
		recorder:     metrics.NopRecorder{},
	}
}

func (o convertOptions) sessionOptions() []schedule.SessionOption {
	opts := []schedule.SessionOption{
		schedule.WithSkipRows(o.skipRows),
		schedule.WithYear(o.year),
		schedule.WithLabelColumns(o.labelCols[0], o.labelCols[1]),
		schedule.WithLogger(o.log),
	}
	if o.requireName {
		opts = append(opts, schedule.WithRequireGroupName())
	}
	return opts
}
