package shiftsheet

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tsawler/shiftsheet/model"
	"github.com/tsawler/shiftsheet/reader"
	"github.com/tsawler/shiftsheet/schedule"
	"github.com/tsawler/shiftsheet/tables"
	"github.com/tsawler/shiftsheet/text"
)

// schedulePage is the only page read from a schedule PDF.
const schedulePage = 1

// ErrNoTable is returned when no table is detected on the schedule page.
var ErrNoTable = errors.New("no table detected")

// PDFSource reads the text and the table of the first page of a PDF. It
// implements both schedule.TextExtractor and schedule.TableExtractor and
// decodes each document only once.
type PDFSource struct {
	detector string
	config   tables.Config
	log      zerolog.Logger
	opts     []reader.Option

	path     string
	page     *model.Page
	warnings []Warning
}

// NewPDFSource returns a PDFSource using the named table detector. The
// reader options control how page content is grouped into fragments.
func NewPDFSource(detector string, config tables.Config, log zerolog.Logger, opts ...reader.Option) *PDFSource {
	return &PDFSource{detector: detector, config: config, log: log, opts: opts}
}

// ExtractText returns the text of page 1, top line first.
func (s *PDFSource) ExtractText(path string) (string, error) {
	page, err := s.load(path)
	if err != nil {
		return "", err
	}
	return text.PageText(page), nil
}

// ExtractTable returns the table on page 1. Its first row becomes the
// header. When several tables are found the one with the most cells wins
// and a warning is recorded.
func (s *PDFSource) ExtractTable(path string) (*schedule.RawTable, error) {
	s.warnings = nil

	page, err := s.load(path)
	if err != nil {
		return nil, err
	}

	det, err := tables.NewDetector(s.detector)
	if err != nil {
		return nil, err
	}
	if err := det.Configure(s.config); err != nil {
		return nil, fmt.Errorf("configure %s detector: %w", s.detector, err)
	}

	found, err := det.Detect(page)
	if err != nil {
		return nil, fmt.Errorf("detect tables: %w", err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w on page %d", ErrNoTable, schedulePage)
	}

	best := largest(found)
	if len(found) > 1 {
		s.warnings = append(s.warnings, Warning{
			Code:    schedule.WarnMultipleTables,
			Row:     -1,
			Message: fmt.Sprintf("%d tables on page %d; using the largest (%dx%d)", len(found), schedulePage, best.RowCount(), best.ColCount()),
		})
	}
	s.log.Debug().
		Int("tables", len(found)).
		Int("rows", best.RowCount()).
		Int("cols", best.ColCount()).
		Float64("confidence", best.Confidence).
		Bool("ruled", best.HasGrid).
		Msg("table detected")

	cells := best.Texts()
	return &schedule.RawTable{Header: cells[0], Rows: cells[1:]}, nil
}

// Warnings returns the issues found by the last ExtractTable call.
func (s *PDFSource) Warnings() []Warning {
	return append([]Warning(nil), s.warnings...)
}

func (s *PDFSource) load(path string) (*model.Page, error) {
	if s.page != nil && s.path == path {
		return s.page, nil
	}

	r, err := reader.Open(path, s.opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if n := r.PageCount(); n > 1 {
		s.log.Debug().Int("pages", n).Msg("reading first page only")
	}
	page, err := r.Page(schedulePage)
	if err != nil {
		return nil, err
	}
	s.path, s.page = path, page
	return page, nil
}

func largest(found []*model.Table) *model.Table {
	best := found[0]
	for _, t := range found[1:] {
		if t.CellCount() > best.CellCount() {
			best = t
		}
	}
	return best
}
