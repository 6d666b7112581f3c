package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Default positions of the two week labels in the header row.
const (
	DefaultLabelColumnA = 2
	DefaultLabelColumnB = 5

	// DefaultSkipRows drops the sub-header row printed directly below the
	// week labels.
	DefaultSkipRows = 1
)

// lazy holds a value computed at most once, together with its error.
type lazy[T any] struct {
	done bool
	val  T
	err  error
}

func (l *lazy[T]) get(compute func() (T, error)) (T, error) {
	if !l.done {
		l.val, l.err = compute()
		l.done = true
	}
	return l.val, l.err
}

// Session holds the state of one conversion. Every derived value is computed
// on first access and cached, errors included, so the collaborators are
// called at most once. A Session is not safe for concurrent use.
type Session struct {
	id   uuid.UUID
	path string

	text   TextExtractor
	tables TableExtractor

	skipRows    int
	requireName bool
	year        int
	labelCols   [2]int
	log         zerolog.Logger

	rawText  lazy[string]
	publish  lazy[time.Time]
	raw      lazy[*RawTable]
	labels   lazy[[2]string]
	window   lazy[DateWindow]
	groups   lazy[[]EmployeeGroup]
	reshaped lazy[*Table]

	warnings []Warning
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSkipRows sets how many grid rows below the header are dropped before
// group detection.
func WithSkipRows(n int) SessionOption {
	return func(s *Session) {
		if n >= 0 {
			s.skipRows = n
		}
	}
}

// WithRequireGroupName makes boundary detection ignore rows without a
// description.
func WithRequireGroupName() SessionOption {
	return func(s *Session) {
		s.requireName = true
	}
}

// WithYear supplies the year to use when the page text carries no publish
// date.
func WithYear(year int) SessionOption {
	return func(s *Session) {
		s.year = year
	}
}

// WithLabelColumns sets the header columns holding the two week labels.
func WithLabelColumns(a, b int) SessionOption {
	return func(s *Session) {
		s.labelCols = [2]int{a, b}
	}
}

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.log = l
	}
}

// NewSession creates a conversion session for the document at path.
func NewSession(path string, text TextExtractor, tables TableExtractor, opts ...SessionOption) *Session {
	s := &Session{
		id:        uuid.New(),
		path:      path,
		text:      text,
		tables:    tables,
		skipRows:  DefaultSkipRows,
		labelCols: [2]int{DefaultLabelColumnA, DefaultLabelColumnB},
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("session", s.id.String()).Str("path", path).Logger()
	return s
}

// ID returns the session identifier used in log output.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Path returns the document path.
func (s *Session) Path() string {
	return s.path
}

// Warnings returns the non-fatal issues found so far.
func (s *Session) Warnings() []Warning {
	return append([]Warning(nil), s.warnings...)
}

func (s *Session) warn(w Warning) {
	s.warnings = append(s.warnings, w)
	s.log.Warn().Str("code", w.Code.String()).Int("row", w.Row).Msg(w.Message)
}

// Text returns the raw text of page 1.
func (s *Session) Text() (string, error) {
	return s.rawText.get(func() (string, error) {
		if s.text == nil {
			return "", ExtractionError("text", errors.New("no text extractor"))
		}
		s.log.Debug().Msg("extracting page text")
		txt, err := s.text.ExtractText(s.path)
		if err != nil {
			return "", ExtractionError("text", err)
		}
		return txt, nil
	})
}

// PublishDate returns the date printed on the first line of page 1. When the
// text has none and a year was configured, it returns January 1 of that year.
func (s *Session) PublishDate() (time.Time, error) {
	return s.publish.get(func() (time.Time, error) {
		txt, err := s.Text()
		if err != nil {
			return time.Time{}, err
		}
		d, err := ParsePublishDate(txt)
		if err != nil {
			if s.year > 0 {
				s.log.Debug().Err(err).Int("year", s.year).Msg("no publish date, using configured year")
				return time.Date(s.year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
			}
			return time.Time{}, err
		}
		return d, nil
	})
}

// RawTable returns the extracted grid with the configured leading rows
// removed. The header is left intact.
func (s *Session) RawTable() (*RawTable, error) {
	return s.raw.get(func() (*RawTable, error) {
		if s.tables == nil {
			return nil, ExtractionError("table", errors.New("no table extractor"))
		}
		s.log.Debug().Msg("extracting table")
		t, err := s.tables.ExtractTable(s.path)
		if ws, ok := s.tables.(WarningSource); ok {
			for _, w := range ws.Warnings() {
				s.warn(w)
			}
		}
		if err != nil {
			return nil, ExtractionError("table", err)
		}
		if t == nil {
			return nil, ExtractionError("table", errors.New("no table detected on page 1"))
		}
		t = t.SkipRows(s.skipRows)
		s.log.Debug().Int("rows", t.RowCount()).Int("cols", t.ColCount()).Msg("table extracted")
		return t, nil
	})
}

// WeekLabels returns the two raw week labels from the header row.
func (s *Session) WeekLabels() ([2]string, error) {
	return s.labels.get(func() ([2]string, error) {
		t, err := s.RawTable()
		if err != nil {
			return [2]string{}, err
		}
		var labels [2]string
		for i, col := range s.labelCols {
			if col < 0 || col >= len(t.Header) {
				return [2]string{}, &LabelError{
					Err: fmt.Errorf("header has %d columns, no week label at column %d", len(t.Header), col),
				}
			}
			labels[i] = t.HeaderLabel(col)
		}
		return labels, nil
	})
}

// DateWindow returns the dates keyed to the day columns.
func (s *Session) DateWindow() (DateWindow, error) {
	return s.window.get(func() (DateWindow, error) {
		labels, err := s.WeekLabels()
		if err != nil {
			return nil, err
		}
		publish, err := s.PublishDate()
		if err != nil {
			return nil, err
		}
		w, err := ResolveDateWindow(labels[0], labels[1], publish)
		if err != nil {
			return nil, err
		}
		if dates, err := ParseWeekLabels(publish.Year(), labels[0], labels[1]); err == nil && SpansYearBoundary(dates) {
			s.warn(Warning{
				Code:    WarnYearRollover,
				Row:     -1,
				Message: fmt.Sprintf("week labels %q and %q cross a year boundary; all dates use %d", labels[0], labels[1], publish.Year()),
			})
		}
		s.log.Debug().
			Str("start", w.Start().Format(DateLayout)).
			Str("end", w.End().Format(DateLayout)).
			Int("days", w.Len()).
			Msg("date window resolved")
		return w, nil
	})
}

// Groups returns the employee groups of the raw table.
func (s *Session) Groups() ([]EmployeeGroup, error) {
	return s.groups.get(func() ([]EmployeeGroup, error) {
		t, err := s.RawTable()
		if err != nil {
			return nil, err
		}
		var opts []GroupOption
		if s.requireName {
			opts = append(opts, RequireName())
		}
		groups, err := DetectGroups(t, opts...)
		if err != nil {
			return nil, err
		}
		for _, w := range GroupWarnings(groups) {
			s.warn(w)
		}
		s.log.Debug().Int("groups", len(groups)).Msg("groups detected")
		return groups, nil
	})
}

// Table returns the normalized schedule.
func (s *Session) Table() (*Table, error) {
	return s.reshaped.get(func() (*Table, error) {
		t, err := s.RawTable()
		if err != nil {
			return nil, err
		}
		w, err := s.DateWindow()
		if err != nil {
			return nil, err
		}
		groups, err := s.Groups()
		if err != nil {
			return nil, err
		}
		out, err := Reshape(t, w, groups)
		if err != nil {
			return nil, err
		}
		if len(out.Orphans) > 0 {
			s.warn(Warning{
				Code:    WarnOrphanRows,
				Row:     out.Orphans[0],
				Message: fmt.Sprintf("%d rows before the first employee were dropped", len(out.Orphans)),
			})
		}
		s.log.Debug().Int("rows", len(out.Rows)).Msg("schedule reshaped")
		return out, nil
	})
}
