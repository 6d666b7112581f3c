package shiftsheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tsawler/shiftsheet/config"
	"github.com/tsawler/shiftsheet/export"
	"github.com/tsawler/shiftsheet/logger"
	"github.com/tsawler/shiftsheet/metrics"
	"github.com/tsawler/shiftsheet/schedule"
	"github.com/tsawler/shiftsheet/tables"
)

// Converter provides a fluent interface for converting one schedule PDF.
// Each configuration method returns a new Converter, so a configured
// Converter can be reused as a template. The first configuration error is
// kept and returned by the terminal operation.
type Converter struct {
	path    string
	options convertOptions

	// Accumulated error (fail-fast)
	err error
}

func (c *Converter) clone() *Converter {
	return &Converter{
		path:    c.path,
		options: c.options,
		err:     c.err,
	}
}

func (c *Converter) fail(err error) *Converter {
	next := c.clone()
	if next.err == nil {
		next.err = err
	}
	return next
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// SkipRows sets how many grid rows below the header are dropped before
// employee groups are detected. The default of 1 drops the weekday row.
//
// Example:
//
//	table, _, err := shiftsheet.Open("week.pdf").SkipRows(0).Table()
func (c *Converter) SkipRows(n int) *Converter {
	if n < 0 {
		return c.fail(fmt.Errorf("skip rows must not be negative, got %d", n))
	}
	next := c.clone()
	next.options.skipRows = n
	return next
}

// RequireGroupName stops rows without a description from being read as the
// start of a new employee's block.
func (c *Converter) RequireGroupName() *Converter {
	next := c.clone()
	next.options.requireName = true
	return next
}

// Year sets the year used when the page carries no publish date on its
// first line.
func (c *Converter) Year(year int) *Converter {
	if year < 1 || year > 9999 {
		return c.fail(fmt.Errorf("year out of range: %d", year))
	}
	next := c.clone()
	next.options.year = year
	return next
}

// LabelColumns sets the header columns holding the two week labels.
func (c *Converter) LabelColumns(a, b int) *Converter {
	if a < 0 || b < 0 {
		return c.fail(fmt.Errorf("label columns must not be negative, got %d and %d", a, b))
	}
	next := c.clone()
	next.options.labelCols = [2]int{a, b}
	return next
}

// Detector selects a registered table detector by name.
func (c *Converter) Detector(name string) *Converter {
	if _, err := tables.NewDetector(name); err != nil {
		return c.fail(err)
	}
	next := c.clone()
	next.options.detector = name
	return next
}

// Logger sets the logger used for the conversion. Nothing is logged by
// default.
func (c *Converter) Logger(l zerolog.Logger) *Converter {
	next := c.clone()
	next.options.log = l
	next.options.logSet = true
	return next
}

// Metrics sets the recorder that receives the conversion outcome.
func (c *Converter) Metrics(r metrics.Recorder) *Converter {
	if r == nil {
		r = metrics.NopRecorder{}
	}
	next := c.clone()
	next.options.recorder = r
	return next
}

// TextExtractor replaces the PDF text reader.
func (c *Converter) TextExtractor(e schedule.TextExtractor) *Converter {
	next := c.clone()
	next.options.text = e
	return next
}

// TableExtractor replaces the PDF table reader.
func (c *Converter) TableExtractor(e schedule.TableExtractor) *Converter {
	next := c.clone()
	next.options.table = e
	return next
}

// WithConfig applies loaded settings. A logger or recorder set explicitly
// takes precedence over the logging and metrics sections.
//
// Example:
//
//	cfg, err := config.Load("shiftsheet.yaml")
//	...
//	table, _, err := shiftsheet.Open("week.pdf").WithConfig(cfg).Table()
func (c *Converter) WithConfig(cfg *config.Config) *Converter {
	if cfg == nil {
		return c
	}
	if err := cfg.Validate(); err != nil {
		return c.fail(fmt.Errorf("invalid config: %w", err))
	}

	next := c.clone()
	o := &next.options
	o.skipRows = cfg.Schedule.SkipRows
	o.requireName = cfg.Schedule.RequireGroupName
	o.year = cfg.Schedule.Year
	o.labelCols = cfg.Schedule.LabelColumns
	o.detector = cfg.Tables.Detector
	o.detectorConf = cfg.Tables.DetectorConfig()
	o.readerOpts = cfg.Tables.ReaderOptions()

	if cfg.Logging.Enabled && !o.logSet {
		o.log = logger.New("shiftsheet", logger.WithLevel(cfg.Logging.ZerologLevel()))
	}
	if cfg.Metrics.Enabled {
		if _, isNop := o.recorder.(metrics.NopRecorder); isNop {
			rec, err := metrics.NewPromRecorder(nil)
			if err != nil {
				return c.fail(fmt.Errorf("metrics: %w", err))
			}
			o.recorder = rec
		}
	}
	return next
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Session returns a fresh conversion session. Its accessors expose every
// intermediate result: the raw grid, the week labels, the date window and
// the employee groups.
func (c *Converter) Session() (*schedule.Session, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.path == "" {
		return nil, errors.New("no path specified")
	}

	o := c.options
	text, table := o.text, o.table
	if text == nil || table == nil {
		src := NewPDFSource(o.detector, o.detectorConf, o.log, o.readerOpts...)
		if text == nil {
			text = src
		}
		if table == nil {
			table = src
		}
	}
	return schedule.NewSession(c.path, text, table, o.sessionOptions()...), nil
}

// Table converts the document and returns the normalized table together
// with any non-fatal warnings.
//
// Example:
//
//	table, warnings, err := shiftsheet.Open("week.pdf").Table()
func (c *Converter) Table() (*schedule.Table, []Warning, error) {
	sess, err := c.Session()
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	t, err := sess.Table()
	elapsed := time.Since(start)

	o := c.options
	o.recorder.ConversionCompleted(metrics.ResultOf(err), elapsed)
	warnings := sess.Warnings()
	if err != nil {
		o.log.Error().Err(err).Str("session", sess.ID().String()).Str("path", c.path).Msg("conversion failed")
		return nil, warnings, err
	}

	groups, _ := sess.Groups()
	o.recorder.TableEmitted(len(t.Rows), len(groups))
	o.log.Info().
		Str("session", sess.ID().String()).
		Str("path", c.path).
		Int("rows", len(t.Rows)).
		Int("groups", len(groups)).
		Int("days", t.Dates.Len()).
		Int("warnings", len(warnings)).
		Dur("elapsed", elapsed).
		Msg("schedule converted")
	return t, warnings, nil
}

// CSV converts the document and renders it as CSV with a header row.
func (c *Converter) CSV() (string, []Warning, error) {
	t, warnings, err := c.Table()
	if err != nil {
		return "", warnings, err
	}
	out, err := export.CSV(t)
	return out, warnings, err
}

// Markdown converts the document and renders it as a Markdown table.
func (c *Converter) Markdown() (string, []Warning, error) {
	t, warnings, err := c.Table()
	if err != nil {
		return "", warnings, err
	}
	return export.Markdown(t), warnings, nil
}

// XLSX converts the document and renders it as an XLSX workbook.
func (c *Converter) XLSX() ([]byte, []Warning, error) {
	t, warnings, err := c.Table()
	if err != nil {
		return nil, warnings, err
	}
	out, err := export.XLSX(t)
	return out, warnings, err
}
