package reader

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/shiftsheet/internal/textnorm"
	"github.com/tsawler/shiftsheet/model"
)

// fallbackFontSize is used for glyphs whose effective size could not be
// computed by the decoder.
const fallbackFontSize = 10.0

// MergeGlyphs groups decoded glyphs into fragments. Glyphs are first split
// into lines by baseline, then joined left to right while the gap between
// them stays under the phrase gap. Whitespace glyphs only widen the gap.
func MergeGlyphs(glyphs []pdf.Text, opts Options) []model.TextFragment {
	var frags []model.TextFragment
	for _, line := range groupByBaseline(glyphs, opts.BaselineTolerance) {
		frags = append(frags, mergeLine(line, opts)...)
	}
	return frags
}

func groupByBaseline(glyphs []pdf.Text, tol float64) [][]pdf.Text {
	if len(glyphs) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines [][]pdf.Text
	current := []pdf.Text{sorted[0]}
	lineY := sorted[0].Y
	for _, g := range sorted[1:] {
		if math.Abs(g.Y-lineY) <= fontSize(g)*tol {
			current = append(current, g)
			continue
		}
		lines = append(lines, current)
		current = []pdf.Text{g}
		lineY = g.Y
	}
	lines = append(lines, current)

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].X < line[j].X
		})
	}
	return lines
}

type pending struct {
	sb       strings.Builder
	bbox     model.BBox
	right    float64
	font     string
	fontSize float64
	started  bool
	spaced   bool
}

func (p *pending) flush(out []model.TextFragment) []model.TextFragment {
	if !p.started {
		return out
	}
	out = append(out, model.TextFragment{
		Text:     strings.TrimSpace(p.sb.String()),
		BBox:     p.bbox,
		FontSize: p.fontSize,
		FontName: p.font,
	})
	*p = pending{}
	return out
}

func mergeLine(line []pdf.Text, opts Options) []model.TextFragment {
	var (
		out []model.TextFragment
		cur pending
	)

	for _, g := range line {
		size := fontSize(g)
		if textnorm.IsBlank(g.S) {
			// An explicit space separates words even when the glyphs touch.
			cur.spaced = cur.started
			continue
		}

		box := model.NewBBox(g.X, g.Y, g.W, size)
		if !cur.started {
			cur.started = true
			cur.bbox = box
			cur.right = g.X + g.W
			cur.font = g.Font
			cur.fontSize = size
			cur.sb.WriteString(g.S)
			continue
		}

		gap := g.X - cur.right
		switch {
		case gap > size*opts.PhraseGap:
			out = cur.flush(out)
			cur.started = true
			cur.bbox = box
			cur.right = g.X + g.W
			cur.font = g.Font
			cur.fontSize = size
		case cur.spaced || gap >= size*opts.SpaceRatio*0.5:
			cur.sb.WriteByte(' ')
			cur.bbox = cur.bbox.Union(box)
		default:
			cur.bbox = cur.bbox.Union(box)
		}
		cur.sb.WriteString(g.S)
		cur.right = math.Max(cur.right, g.X+g.W)
		cur.spaced = false
	}
	return cur.flush(out)
}

func fontSize(g pdf.Text) float64 {
	if g.FontSize > 0 {
		return g.FontSize
	}
	return fallbackFontSize
}

// RectLines converts filled rectangles into ruling lines. Thin rectangles
// become a single line through their middle; larger ones contribute their
// four edges, which is how many generators draw cell borders.
func RectLines(rects []pdf.Rect, thickness float64) []model.Line {
	var lines []model.Line
	for _, r := range rects {
		minX, maxX := math.Min(r.Min.X, r.Max.X), math.Max(r.Min.X, r.Max.X)
		minY, maxY := math.Min(r.Min.Y, r.Max.Y), math.Max(r.Min.Y, r.Max.Y)
		w, h := maxX-minX, maxY-minY

		switch {
		case w <= thickness && h <= thickness:
			continue
		case h <= thickness:
			y := (minY + maxY) / 2
			lines = append(lines, model.Line{Start: model.Point{X: minX, Y: y}, End: model.Point{X: maxX, Y: y}, Width: h})
		case w <= thickness:
			x := (minX + maxX) / 2
			lines = append(lines, model.Line{Start: model.Point{X: x, Y: minY}, End: model.Point{X: x, Y: maxY}, Width: w})
		default:
			lines = append(lines,
				model.Line{Start: model.Point{X: minX, Y: minY}, End: model.Point{X: maxX, Y: minY}},
				model.Line{Start: model.Point{X: minX, Y: maxY}, End: model.Point{X: maxX, Y: maxY}},
				model.Line{Start: model.Point{X: minX, Y: minY}, End: model.Point{X: minX, Y: maxY}},
				model.Line{Start: model.Point{X: maxX, Y: minY}, End: model.Point{X: maxX, Y: maxY}},
			)
		}
	}
	return lines
}
