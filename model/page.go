package model

import "math"

// TextFragment is a run of text drawn with one font at one position.
type TextFragment struct {
	Text     string
	BBox     BBox
	FontSize float64
	FontName string
}

// Line is a ruling segment. Filled rectangles thin enough to read as rules
// are reported as lines too.
type Line struct {
	Start Point
	End   Point
	Width float64
}

// IsHorizontal reports whether the line runs left to right within tol.
func (l Line) IsHorizontal(tol float64) bool {
	return math.Abs(l.Start.Y-l.End.Y) <= tol && math.Abs(l.Start.X-l.End.X) > tol
}

// IsVertical reports whether the line runs top to bottom within tol.
func (l Line) IsVertical(tol float64) bool {
	return math.Abs(l.Start.X-l.End.X) <= tol && math.Abs(l.Start.Y-l.End.Y) > tol
}

// Length returns the Euclidean length of the line.
func (l Line) Length() float64 {
	return math.Hypot(l.End.X-l.Start.X, l.End.Y-l.Start.Y)
}

// Page represents a single page in a PDF document
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points

	Fragments []TextFragment // Word-level text with positions
	Lines     []Line         // Ruling lines
}

// NewPage creates a new page with given dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number:    number,
		Width:     width,
		Height:    height,
		Fragments: make([]TextFragment, 0),
		Lines:     make([]Line, 0),
	}
}

// AddFragment appends a text fragment.
func (p *Page) AddFragment(f TextFragment) {
	p.Fragments = append(p.Fragments, f)
}

// AddLine appends a ruling line.
func (p *Page) AddLine(l Line) {
	p.Lines = append(p.Lines, l)
}
