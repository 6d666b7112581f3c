package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	// WeekLabelSeparator splits a week label into its start and end tokens.
	WeekLabelSeparator = "to"

	// WeekTokenLayout parses one week label token: abbreviated month and day.
	WeekTokenLayout = "Jan 2"

	// PublishDateLayout parses the publish date on the first line of page 1.
	PublishDateLayout = "1/2/2006"

	// windowPadDays widens the window on both sides so that the weekend
	// columns printed outside the two labelled weeks get dates too.
	windowPadDays = 2
)

// DateWindow is an ascending run of consecutive calendar dates, one per day
// column. Dates are midnight UTC.
type DateWindow []time.Time

// Len returns the number of days in the window.
func (w DateWindow) Len() int {
	return len(w)
}

// Start returns the first date, or the zero time for an empty window.
func (w DateWindow) Start() time.Time {
	if len(w) == 0 {
		return time.Time{}
	}
	return w[0]
}

// End returns the last date, or the zero time for an empty window.
func (w DateWindow) End() time.Time {
	if len(w) == 0 {
		return time.Time{}
	}
	return w[len(w)-1]
}

// Labels formats every date with layout.
func (w DateWindow) Labels(layout string) []string {
	labels := make([]string, len(w))
	for i, d := range w {
		labels[i] = d.Format(layout)
	}
	return labels
}

// ResolveDateWindow parses two week labels and returns the padded window of
// dates they cover. Every date takes the year of publish.
func ResolveDateWindow(labelA, labelB string, publish time.Time) (DateWindow, error) {
	if publish.IsZero() {
		return nil, ErrAmbiguousYear
	}

	dates, err := ParseWeekLabels(publish.Year(), labelA, labelB)
	if err != nil {
		return nil, err
	}

	first, last := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	return DaysBetween(
		first.AddDate(0, 0, -windowPadDays),
		last.AddDate(0, 0, windowPadDays),
	), nil
}

// ParseWeekLabel splits label on WeekLabelSeparator and parses the one or two
// tokens as month and day in the given year.
func ParseWeekLabel(label string, year int) ([]time.Time, error) {
	tokens := strings.Split(label, WeekLabelSeparator)
	if len(tokens) > 2 {
		return nil, &LabelError{
			Label: label,
			Err:   fmt.Errorf("want 1 or 2 dates, got %d", len(tokens)),
		}
	}

	dates := make([]time.Time, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		d, err := time.Parse(WeekTokenLayout, tok)
		if err != nil {
			return nil, &LabelError{Label: label, Token: tok, Err: err}
		}
		dated := time.Date(year, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if dated.Month() != d.Month() {
			return nil, &LabelError{Label: label, Token: tok, Err: fmt.Errorf("day out of range for %d", year)}
		}
		dates = append(dates, dated)
	}
	return dates, nil
}

// ParseWeekLabels parses each label with ParseWeekLabel and concatenates the
// dates in label order.
func ParseWeekLabels(year int, labels ...string) ([]time.Time, error) {
	var dates []time.Time
	for _, label := range labels {
		parsed, err := ParseWeekLabel(label, year)
		if err != nil {
			return nil, err
		}
		dates = append(dates, parsed...)
	}
	return dates, nil
}

// SpansYearBoundary reports whether dates, in label order, ever step
// backwards. That happens when a week runs from December into January and
// both ends were given the same year.
func SpansYearBoundary(dates []time.Time) bool {
	for i := 1; i < len(dates); i++ {
		if dates[i].Before(dates[i-1]) {
			return true
		}
	}
	return false
}

// DaysBetween returns every date from start to end inclusive. It returns nil
// when end is before start.
func DaysBetween(start, end time.Time) DateWindow {
	start, end = truncateDay(start), truncateDay(end)
	if end.Before(start) {
		return nil
	}
	var w DateWindow
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		w = append(w, d)
	}
	return w
}

// ParsePublishDate reads the publish date from the first line of the page
// text.
func ParsePublishDate(text string) (time.Time, error) {
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return time.Time{}, fmt.Errorf("%w: page text has no first line", ErrAmbiguousYear)
	}
	d, err := time.Parse(PublishDateLayout, line)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: first line %q: %v", ErrAmbiguousYear, line, err)
	}
	return d, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
