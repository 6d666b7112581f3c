package text

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/shiftsheet/model"
)

// DefaultLineTolerance is the fraction of a fragment's height that two
// fragments' vertical centers may differ by and still share a line.
const DefaultLineTolerance = 0.5

// Line is a row of fragments that share a baseline.
type Line struct {
	Y         float64 // vertical center of the first fragment
	Fragments []model.TextFragment
}

// String joins the line's fragments with single spaces.
func (l Line) String() string {
	parts := make([]string, 0, len(l.Fragments))
	for _, f := range l.Fragments {
		if f.Text != "" {
			parts = append(parts, f.Text)
		}
	}
	return strings.Join(parts, " ")
}

// BBox returns the union of the line's fragment boxes.
func (l Line) BBox() model.BBox {
	var b model.BBox
	for _, f := range l.Fragments {
		b = b.Union(f.BBox)
	}
	return b
}

// GroupLines groups fragments into lines ordered top to bottom.
func GroupLines(frags []model.TextFragment, tolerance float64) []Line {
	if len(frags) == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultLineTolerance
	}

	sorted := make([]model.TextFragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Center().Y > sorted[j].BBox.Center().Y
	})

	var lines []Line
	current := Line{Y: sorted[0].BBox.Center().Y, Fragments: []model.TextFragment{sorted[0]}}
	for _, f := range sorted[1:] {
		y := f.BBox.Center().Y
		if math.Abs(y-current.Y) <= lineHeight(f)*tolerance {
			current.Fragments = append(current.Fragments, f)
			continue
		}
		lines = append(lines, current)
		current = Line{Y: y, Fragments: []model.TextFragment{f}}
	}
	lines = append(lines, current)

	for _, l := range lines {
		sort.SliceStable(l.Fragments, func(i, j int) bool {
			return l.Fragments[i].BBox.X < l.Fragments[j].BBox.X
		})
	}
	return lines
}

// PageText returns the text of page, one line per row of fragments.
func PageText(page *model.Page) string {
	if page == nil {
		return ""
	}
	lines := GroupLines(page.Fragments, DefaultLineTolerance)

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

func lineHeight(f model.TextFragment) float64 {
	if f.BBox.Height > 0 {
		return f.BBox.Height
	}
	return f.FontSize
}
