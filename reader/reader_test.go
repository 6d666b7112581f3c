package reader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/shiftsheet/model"
)

func glyph(s string, x, y float64) pdf.Text {
	return pdf.Text{Font: "Helvetica", FontSize: 10, X: x, Y: y, W: 5 * float64(len(s)), S: s}
}

func texts(frags []model.TextFragment) []string {
	out := make([]string, len(frags))
	for i, f := range frags {
		out[i] = f.Text
	}
	return out
}

func TestMergeGlyphsJoinsTouchingGlyphs(t *testing.T) {
	frags := MergeGlyphs([]pdf.Text{
		glyph("J", 0, 700),
		glyph("o", 5, 700),
		glyph("b", 10, 700),
	}, DefaultOptions())

	require.Len(t, frags, 1)
	assert.Equal(t, "Job", frags[0].Text)
	assert.Equal(t, model.NewBBox(0, 700, 15, 10), frags[0].BBox)
	assert.Equal(t, "Helvetica", frags[0].FontName)
}

func TestMergeGlyphsExplicitSpace(t *testing.T) {
	frags := MergeGlyphs([]pdf.Text{
		glyph("Job", 0, 700),
		glyph(" ", 15, 700),
		glyph("#", 16, 700),
	}, DefaultOptions())

	assert.Equal(t, []string{"Job #"}, texts(frags))
}

func TestMergeGlyphsInvisibleGlyphSeparates(t *testing.T) {
	frags := MergeGlyphs([]pdf.Text{
		glyph("Job", 0, 700),
		glyph("\u00a0", 15, 700),
		glyph("#", 16, 700),
		glyph("\x00", 21, 700),
		glyph("1", 22, 700),
	}, DefaultOptions())

	assert.Equal(t, []string{"Job # 1"}, texts(frags))
}

func TestMergeGlyphsWordGap(t *testing.T) {
	frags := MergeGlyphs([]pdf.Text{
		glyph("Jan", 0, 700),
		glyph("5", 18, 700),
	}, DefaultOptions())

	assert.Equal(t, []string{"Jan 5"}, texts(frags))
}

func TestMergeGlyphsColumnGapSplits(t *testing.T) {
	frags := MergeGlyphs([]pdf.Text{
		glyph("100", 0, 700),
		glyph("X", 200, 700),
		glyph("Paving", 40, 700),
	}, DefaultOptions())

	assert.Equal(t, []string{"100", "Paving", "X"}, texts(frags))
}

func TestMergeGlyphsLinesTopToBottom(t *testing.T) {
	frags := MergeGlyphs([]pdf.Text{
		glyph("second", 0, 680),
		glyph("first", 0, 700),
		glyph("jitter", 28, 702),
	}, DefaultOptions())

	assert.Equal(t, []string{"first jitter", "second"}, texts(frags))
}

func TestMergeGlyphsPhraseGapOption(t *testing.T) {
	opts := DefaultOptions()
	WithPhraseGap(50)(&opts)

	frags := MergeGlyphs([]pdf.Text{
		glyph("100", 0, 700),
		glyph("X", 200, 700),
	}, opts)
	assert.Equal(t, []string{"100 X"}, texts(frags))
}

func TestMergeGlyphsZeroFontSize(t *testing.T) {
	g := glyph("A", 0, 700)
	g.FontSize = 0

	frags := MergeGlyphs([]pdf.Text{g}, DefaultOptions())
	require.Len(t, frags, 1)
	assert.Equal(t, fallbackFontSize, frags[0].FontSize)
}

func TestMergeGlyphsEmpty(t *testing.T) {
	assert.Empty(t, MergeGlyphs(nil, DefaultOptions()))
	assert.Empty(t, MergeGlyphs([]pdf.Text{glyph(" ", 0, 0)}, DefaultOptions()))
}

func TestRectLines(t *testing.T) {
	rect := func(x0, y0, x1, y1 float64) pdf.Rect {
		return pdf.Rect{Min: pdf.Point{X: x0, Y: y0}, Max: pdf.Point{X: x1, Y: y1}}
	}

	lines := RectLines([]pdf.Rect{
		rect(0, 99.5, 300, 100.5), // horizontal rule
		rect(49.5, 0, 50.5, 200),  // vertical rule
		rect(0, 0, 1, 1),          // dot
	}, 2)

	require.Len(t, lines, 2)
	assert.True(t, lines[0].IsHorizontal(0.5))
	assert.Equal(t, 100.0, lines[0].Start.Y)
	assert.True(t, lines[1].IsVertical(0.5))
	assert.Equal(t, 50.0, lines[1].Start.X)

	box := RectLines([]pdf.Rect{rect(10, 10, 60, 30)}, 2)
	require.Len(t, box, 4)
	var h, v int
	for _, l := range box {
		if l.IsHorizontal(0.5) {
			h++
		}
		if l.IsVertical(0.5) {
			v++
		}
	}
	assert.Equal(t, 2, h)
	assert.Equal(t, 2, v)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestOpenNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrNotPDF)
}

func TestNewReaderGarbage(t *testing.T) {
	data := []byte("garbage")
	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrNotPDF)
}

func TestNewReaderTruncated(t *testing.T) {
	data := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotPDF)
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		data string
		want Format
	}{
		{"%PDF-1.7\n", PDF},
		{"PK\x03\x04rest", ZIP},
		{"  <!doctype html><html>", HTML},
		{"<HTML>", HTML},
		{"%PD", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFromMagic([]byte(tt.data)), "DetectFromMagic(%q)", tt.data)
	}
}

func TestNotPDFErrorNamesFormat(t *testing.T) {
	data := []byte("PK\x03\x04")
	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrNotPDF)
	assert.EqualError(t, err, "not a PDF document (looks like ZIP)")
}

func TestRecoverInto(t *testing.T) {
	run := func(v any) (err error) {
		defer recoverInto(&err)
		panic(v)
	}

	assert.ErrorContains(t, run("bad xref"), "malformed PDF: bad xref")
	assert.ErrorIs(t, run(ErrPageOutOfRange), ErrPageOutOfRange)
}

// onePagePDF assembles a single-page document. pagesExtra and pageExtra are
// spliced into the /Pages and /Page dictionaries.
func onePagePDF(pagesExtra, pageExtra string) []byte {
	content := "10 10 100 1 re f"
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 " + pagesExtra + " >>",
		"<< /Type /Page /Parent 2 0 R /Contents 4 0 R " + pageExtra + " >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestPageMediaBox(t *testing.T) {
	tests := []struct {
		name          string
		pagesExtra    string
		pageExtra     string
		width, height float64
	}{
		{"own box", "", "/MediaBox [0 0 200 100]", 200, 100},
		{"inherited from page tree", "/MediaBox [0 0 792 612]", "", 792, 612},
		{"own box wins over inherited", "/MediaBox [0 0 792 612]", "/MediaBox [0 0 300 400]", 300, 400},
		{"no box anywhere", "", "", 612, 792},
		{"degenerate box", "", "/MediaBox [0 0 0 0]", 612, 792},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := onePagePDF(tt.pagesExtra, tt.pageExtra)
			r, err := NewReader(bytes.NewReader(data), int64(len(data)))
			require.NoError(t, err)
			require.Equal(t, 1, r.PageCount())

			page, err := r.Page(1)
			require.NoError(t, err)
			assert.Equal(t, tt.width, page.Width)
			assert.Equal(t, tt.height, page.Height)
			assert.Len(t, page.Lines, 1, "thin filled rectangle reads as a rule")
		})
	}
}

func TestPageOutOfRange(t *testing.T) {
	data := onePagePDF("", "")
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	_, err = r.Page(2)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}
