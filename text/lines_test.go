package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/shiftsheet/model"
)

func frag(s string, x, y float64) model.TextFragment {
	return model.TextFragment{Text: s, BBox: model.NewBBox(x, y, 5*float64(len(s)), 10), FontSize: 10}
}

func TestGroupLines(t *testing.T) {
	lines := GroupLines([]model.TextFragment{
		frag("Paving", 60, 650),
		frag("10/3/2023", 0, 750),
		frag("100", 0, 651),
		frag("X", 200, 648),
	}, DefaultLineTolerance)

	require.Len(t, lines, 2)
	assert.Equal(t, "10/3/2023", lines[0].String())
	assert.Equal(t, "100 Paving X", lines[1].String())
	assert.Equal(t, model.NewBBox(0, 648, 205, 13), lines[1].BBox())
}

func TestGroupLinesEmpty(t *testing.T) {
	assert.Nil(t, GroupLines(nil, 0))
}

func TestPageText(t *testing.T) {
	page := model.NewPage(1, 612, 792)
	page.AddFragment(frag("Job #", 0, 700))
	page.AddFragment(frag("Oct 2 to Oct 8", 100, 700))
	page.AddFragment(frag("10/3/2023", 0, 760))
	page.AddFragment(frag("", 300, 700))

	assert.Equal(t, "10/3/2023\nJob # Oct 2 to Oct 8", PageText(page))
	assert.Equal(t, "", PageText(nil))
	assert.Equal(t, "", PageText(model.NewPage(2, 612, 792)))
}
