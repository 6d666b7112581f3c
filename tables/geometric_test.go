package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/shiftsheet/model"
)

func frag(s string, x, y float64) model.TextFragment {
	return model.TextFragment{Text: s, BBox: model.NewBBox(x, y, 5*float64(len([]rune(s))), 10), FontSize: 10}
}

func hline(y, x0, x1 float64) model.Line {
	return model.Line{Start: model.Point{X: x0, Y: y}, End: model.Point{X: x1, Y: y}}
}

func vline(x, y0, y1 float64) model.Line {
	return model.Line{Start: model.Point{X: x, Y: y0}, End: model.Point{X: x, Y: y1}}
}

func detector(t *testing.T, minCols int) *GeometricDetector {
	t.Helper()
	d := NewGeometricDetector()
	cfg := DefaultConfig()
	cfg.MinCols = minCols
	require.NoError(t, d.Configure(cfg))
	return d
}

// textSchedule lays out an unruled 8-column schedule under a title line.
func textSchedule() *model.Page {
	page := model.NewPage(1, 612, 792)
	page.AddFragment(frag("10/3/2023", 0, 730))

	for i, h := range []string{"h0", "h1", "h2", "h3", "h4", "h5", "h6", "h7"} {
		page.AddFragment(frag(h, float64(i*60), 700))
	}
	for i, s := range []string{"100", "Paving", "Bob", "Mix", "Day", "X"} {
		page.AddFragment(frag(s, float64(i*60), 680))
	}
	page.AddFragment(frag("Crew A", 60, 660))
	page.AddFragment(frag("101", 0, 640))
	page.AddFragment(frag("Milling", 60, 640))
	page.AddFragment(frag("Al", 120, 640))
	page.AddFragment(frag("Night", 240, 640))
	page.AddFragment(frag("Ｘ", 360, 640))
	return page
}

func TestGeometricDetectorTextOnly(t *testing.T) {
	found, err := detector(t, 7).Detect(textSchedule())
	require.NoError(t, err)
	require.Len(t, found, 1)

	table := found[0]
	assert.False(t, table.HasGrid)
	assert.GreaterOrEqual(t, table.Confidence, 0.3)
	assert.Equal(t, [][]string{
		{"h0", "h1", "h2", "h3", "h4", "h5", "h6", "h7"},
		{"100", "Paving", "Bob", "Mix", "Day", "X", "", ""},
		{"", "Crew A", "", "", "", "", "", ""},
		{"101", "Milling", "Al", "", "Night", "", "X", ""},
	}, table.Texts())
}

func TestGeometricDetectorRuledMergedHeader(t *testing.T) {
	page := model.NewPage(1, 612, 792)
	page.AddFragment(frag("10/3/2023", 0, 720))
	page.AddFragment(frag("Job", 2, 685))
	page.AddFragment(frag("Desc", 52, 685))
	page.AddFragment(frag("Oct 2 to Oct 8", 140, 685))
	page.AddFragment(frag("100", 2, 665))
	page.AddFragment(frag("Pave", 52, 665))
	page.AddFragment(frag("X", 102, 665))
	page.AddFragment(frag("X", 152, 665))
	page.AddFragment(frag("101", 2, 645))
	page.AddFragment(frag("X", 152, 645))

	for _, y := range []float64{700, 680, 660, 640} {
		page.AddLine(hline(y, 0, 200))
	}
	for _, x := range []float64{0, 50, 100, 200} {
		page.AddLine(vline(x, 640, 700))
	}
	// No rule between the two day columns on the header row.
	page.AddLine(vline(150, 640, 680))

	found, err := detector(t, 2).Detect(page)
	require.NoError(t, err)
	require.Len(t, found, 1)

	table := found[0]
	assert.True(t, table.HasGrid)
	assert.Equal(t, model.NewBBox(0, 640, 200, 60), table.BBox)
	assert.Equal(t, [][]string{
		{"Job", "Desc", "Oct 2 to Oct 8", ""},
		{"100", "Pave", "X", "X"},
		{"101", "", "", "X"},
	}, table.Texts())
}

func TestGeometricDetectorIgnoresLinesWhenDisabled(t *testing.T) {
	page := textSchedule()
	page.AddLine(vline(30, 600, 720))
	page.AddLine(vline(31, 600, 720))

	d := NewGeometricDetector()
	cfg := DefaultConfig()
	cfg.MinCols = 7
	cfg.UseLines = false
	require.NoError(t, d.Configure(cfg))

	found, err := d.Detect(page)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 8, found[0].ColCount())
}

func TestGeometricDetectorNoTable(t *testing.T) {
	d := detector(t, 7)

	found, err := d.Detect(nil)
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = d.Detect(model.NewPage(1, 612, 792))
	require.NoError(t, err)
	assert.Empty(t, found)

	page := model.NewPage(1, 612, 792)
	page.AddFragment(frag("10/3/2023", 0, 730))
	page.AddFragment(frag("Nothing scheduled", 0, 700))
	found, err = d.Detect(page)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGeometricDetectorSeparatesClusters(t *testing.T) {
	page := textSchedule()
	for i, s := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		page.AddFragment(frag(s, float64(i*60), 300))
		page.AddFragment(frag(s, float64(i*60), 280))
	}

	found, err := detector(t, 7).Detect(page)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, 4, found[0].RowCount())
	assert.Equal(t, 2, found[1].RowCount())
}

func TestClusterValues(t *testing.T) {
	assert.Nil(t, clusterValues(nil, 2))
	assert.Equal(t, []float64{0, 60.5, 120}, clusterValues([]float64{0, 60, 61, 120}, 2))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := []func(*Config){
		func(c *Config) { c.MinRows = 0 },
		func(c *Config) { c.MinCols = 0 },
		func(c *Config) { c.MinConfidence = 1.5 },
		func(c *Config) { c.AlignmentTolerance = 0 },
		func(c *Config) { c.RowTolerance = -1 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
		assert.Error(t, NewGeometricDetector().Configure(cfg), "case %d", i)
	}
}

func TestRegistry(t *testing.T) {
	assert.Contains(t, ListDetectors(), GeometricName)

	a, err := NewDetector(GeometricName)
	require.NoError(t, err)
	b, err := NewDetector(GeometricName)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, GeometricName, a.Name())

	_, err = NewDetector("lattice")
	assert.ErrorIs(t, err, ErrUnknownDetector)

	r := NewRegistry()
	r.Register("b", func() Detector { return NewGeometricDetector() })
	r.Register("a", func() Detector { return NewGeometricDetector() })
	assert.Equal(t, []string{"a", "b"}, r.List())
}
