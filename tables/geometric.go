package tables

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/shiftsheet/internal/textnorm"
	"github.com/tsawler/shiftsheet/model"
)

// GeometricName is the registry name of [GeometricDetector].
const GeometricName = "geometric"

// GeometricDetector finds tables from the positions of text fragments and,
// when the page draws them, its ruling lines. Ruling lines win wherever there
// are enough of them to outline the table; otherwise rows come from text
// baselines and columns from left edges that line up.
type GeometricDetector struct {
	config Config
}

// NewGeometricDetector creates a new geometric table detector with default configuration.
func NewGeometricDetector() *GeometricDetector {
	return &GeometricDetector{
		config: DefaultConfig(),
	}
}

// Name returns the detector's identifier ("geometric").
func (d *GeometricDetector) Name() string {
	return GeometricName
}

// Configure validates and sets the detector configuration.
func (d *GeometricDetector) Configure(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	d.config = config
	return nil
}

// Detect finds tables on a page. Fragments are clustered by vertical
// proximity and each cluster is analyzed on its own.
func (d *GeometricDetector) Detect(page *model.Page) ([]*model.Table, error) {
	if page == nil || len(page.Fragments) == 0 {
		return nil, nil
	}

	var lines []model.Line
	if d.config.UseLines {
		lines = page.Lines
	}

	var tables []*model.Table
	for _, cluster := range d.clusterFragments(page.Fragments) {
		if table := d.detectTableInCluster(cluster, lines); table != nil {
			tables = append(tables, table)
		}
	}
	return tables, nil
}

// clusterFragments groups fragments top to bottom, starting a new cluster
// whenever the vertical gap to everything above exceeds ClusterGap.
func (d *GeometricDetector) clusterFragments(fragments []model.TextFragment) [][]model.TextFragment {
	sorted := sortedByReadingOrder(fragments)

	var clusters [][]model.TextFragment
	current := []model.TextFragment{sorted[0]}
	bottom := sorted[0].BBox.Bottom()

	for _, frag := range sorted[1:] {
		if bottom-frag.BBox.Top() > d.config.ClusterGap {
			clusters = append(clusters, current)
			current = []model.TextFragment{frag}
			bottom = frag.BBox.Bottom()
			continue
		}
		current = append(current, frag)
		bottom = math.Min(bottom, frag.BBox.Bottom())
	}
	return append(clusters, current)
}

// layout is a grid plus the fragments that belong to it.
type layout struct {
	grid      *model.TableGrid
	fragments []model.TextFragment
	ruledCols bool
	verticals []model.Line
	tolerance float64
}

func (d *GeometricDetector) detectTableInCluster(fragments []model.TextFragment, lines []model.Line) *model.Table {
	if len(fragments) < d.config.MinCols {
		return nil
	}

	l := d.buildLayout(fragments, lines)
	if l == nil {
		return nil
	}
	grid := l.grid
	if grid.RowCount() < d.config.MinRows || grid.ColCount() < d.config.MinCols {
		return nil
	}

	confidence := d.calculateConfidence(grid, l.fragments)
	if confidence < d.config.MinConfidence {
		return nil
	}

	table := model.NewTable(grid.RowCount(), grid.ColCount())
	d.assignFragmentsToCells(table, l)

	table.Grid = grid
	table.BBox = grid.BBox()
	table.Confidence = confidence
	table.HasGrid = hasVisibleGrid(grid)
	return table
}

func (d *GeometricDetector) buildLayout(fragments []model.TextFragment, lines []model.Line) *layout {
	tol := d.config.AlignmentTolerance
	area := fragmentsBBox(fragments)
	margin := d.config.ClusterGap

	// Rules only need to overlap the text along the axis they run on; an
	// empty outer column can put a vertical rule well clear of any text.
	var horizontals, verticals []model.Line
	for _, line := range lines {
		switch {
		case line.IsHorizontal(tol) && overlaps(line.Start.X, line.End.X, area.Left()-margin, area.Right()+margin):
			horizontals = append(horizontals, line)
		case line.IsVertical(tol) && overlaps(line.Start.Y, line.End.Y, area.Bottom()-margin, area.Top()+margin):
			verticals = append(verticals, line)
		}
	}

	l := &layout{grid: model.NewTableGrid(), fragments: fragments, tolerance: tol}

	if ys := lineOffsets(horizontals, func(p model.Point) float64 { return p.Y }, tol); len(ys) >= d.config.MinRows+1 {
		sort.Sort(sort.Reverse(sort.Float64Slice(ys)))
		l.grid.Rows = ys
		l.fragments = withinRows(fragments, ys[len(ys)-1], ys[0])
		if len(l.fragments) == 0 {
			return nil
		}
	} else {
		rows, kept := d.textRowBoundaries(fragments)
		if rows == nil {
			return nil
		}
		l.grid.Rows = rows
		l.fragments = kept
	}

	if xs := lineOffsets(verticals, func(p model.Point) float64 { return p.X }, tol); len(xs) >= d.config.MinCols+1 {
		l.grid.Cols = xs
		l.ruledCols = true
		l.verticals = verticals
	} else {
		l.grid.Cols = d.textColumnBoundaries(l.fragments)
	}

	l.grid.HasHLines = detectLines(l.grid.Rows, horizontals, func(p model.Point) float64 { return p.Y }, tol)
	l.grid.HasVLines = detectLines(l.grid.Cols, verticals, func(p model.Point) float64 { return p.X }, tol)
	return l
}

func overlaps(a, b, lo, hi float64) bool {
	return math.Max(a, b) >= lo && math.Min(a, b) <= hi
}

func withinRows(fragments []model.TextFragment, bottom, top float64) []model.TextFragment {
	var kept []model.TextFragment
	for _, f := range fragments {
		if y := f.BBox.Center().Y; y >= bottom && y <= top {
			kept = append(kept, f)
		}
	}
	return kept
}

// lineOffsets clusters the positions of ruling lines along one axis.
func lineOffsets(lines []model.Line, axis func(model.Point) float64, tol float64) []float64 {
	if len(lines) == 0 {
		return nil
	}
	values := make([]float64, len(lines))
	for i, line := range lines {
		values[i] = (axis(line.Start) + axis(line.End)) / 2
	}
	sort.Float64s(values)
	return clusterValues(values, tol)
}

// textRowBoundaries groups fragments into rows by vertical center and
// returns the row boundaries, top to bottom, with the fragments that fall
// inside them. Sparse rows above the first dense row and below the last one
// are titles or footers and are left out.
func (d *GeometricDetector) textRowBoundaries(fragments []model.TextFragment) ([]float64, []model.TextFragment) {
	sorted := sortedByReadingOrder(fragments)

	var rows [][]model.TextFragment
	current := []model.TextFragment{sorted[0]}
	anchor := sorted[0].BBox.Center().Y
	for _, frag := range sorted[1:] {
		if anchor-frag.BBox.Center().Y > d.config.RowTolerance {
			rows = append(rows, current)
			current = []model.TextFragment{frag}
			anchor = frag.BBox.Center().Y
			continue
		}
		current = append(current, frag)
	}
	rows = append(rows, current)

	dense := max(2, d.config.MinCols/2)
	first, last := -1, -1
	for i, row := range rows {
		if len(row) >= dense {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil, nil
	}
	rows = rows[first : last+1]

	tops := make([]float64, len(rows))
	bottoms := make([]float64, len(rows))
	centers := make([]float64, len(rows))
	var kept []model.TextFragment
	for i, row := range rows {
		b := fragmentsBBox(row)
		tops[i], bottoms[i], centers[i] = b.Top(), b.Bottom(), b.Center().Y
		kept = append(kept, row...)
	}

	boundaries := []float64{tops[0]}
	for i := 0; i < len(rows)-1; i++ {
		if bottoms[i] > tops[i+1] {
			boundaries = append(boundaries, (bottoms[i]+tops[i+1])/2)
		} else {
			boundaries = append(boundaries, (centers[i]+centers[i+1])/2)
		}
	}
	boundaries = append(boundaries, bottoms[len(bottoms)-1])
	return boundaries, kept
}

// textColumnBoundaries uses the clustered left edges of fragments as column
// starts and the rightmost edge as the final boundary.
func (d *GeometricDetector) textColumnBoundaries(fragments []model.TextFragment) []float64 {
	lefts := make([]float64, len(fragments))
	right := math.Inf(-1)
	for i, frag := range fragments {
		lefts[i] = frag.BBox.Left()
		right = math.Max(right, frag.BBox.Right())
	}
	sort.Float64s(lefts)

	cols := clusterValues(lefts, d.config.AlignmentTolerance)
	if right > cols[len(cols)-1] {
		cols = append(cols, right)
	}
	return cols
}

// clusterValues clusters sorted values within tolerance, averaging values
// that fall within the tolerance of the cluster center.
func clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	clustered := []float64{values[0]}
	for _, v := range values[1:] {
		last := len(clustered) - 1
		if v-clustered[last] > tolerance {
			clustered = append(clustered, v)
		} else {
			clustered[last] = (clustered[last] + v) / 2
		}
	}
	return clustered
}

func detectLines(offsets []float64, lines []model.Line, axis func(model.Point) float64, tol float64) []bool {
	has := make([]bool, len(offsets))
	for i, off := range offsets {
		for _, line := range lines {
			if math.Abs(axis(line.Start)-off) <= tol && math.Abs(axis(line.End)-off) <= tol {
				has[i] = true
				break
			}
		}
	}
	return has
}

// calculateConfidence computes a confidence score (0.0-1.0) for the detected table.
// The score combines grid regularity (30%), alignment quality (30%), line presence (20%),
// and cell occupancy (20%).
func (d *GeometricDetector) calculateConfidence(grid *model.TableGrid, fragments []model.TextFragment) float64 {
	return calculateGridRegularity(grid)*0.3 +
		d.calculateAlignmentQuality(fragments, grid)*0.3 +
		calculateLineScore(grid)*0.2 +
		calculateCellOccupancy(fragments, grid)*0.2
}

// calculateGridRegularity scores how uniform row heights and column widths
// are, from their coefficients of variation.
func calculateGridRegularity(grid *model.TableGrid) float64 {
	if grid.RowCount() < 2 || grid.ColCount() < 2 {
		return 0
	}

	rowHeights := make([]float64, grid.RowCount())
	for i := range rowHeights {
		rowHeights[i] = grid.Rows[i] - grid.Rows[i+1]
	}
	colWidths := make([]float64, grid.ColCount())
	for i := range colWidths {
		colWidths[i] = grid.Cols[i+1] - grid.Cols[i]
	}

	rowScore := math.Max(0, 1-coefficientOfVariation(rowHeights))
	colScore := math.Max(0, 1-coefficientOfVariation(colWidths))
	return (rowScore + colScore) / 2
}

func coefficientOfVariation(values []float64) float64 {
	mean, std := stat.PopMeanStdDev(values, nil)
	if mean == 0 {
		return math.Inf(1)
	}
	return std / mean
}

// calculateAlignmentQuality is the fraction of fragments that sit on a
// column boundary or are centered in their cell.
func (d *GeometricDetector) calculateAlignmentQuality(fragments []model.TextFragment, grid *model.TableGrid) float64 {
	if len(fragments) == 0 {
		return 0
	}

	aligned := 0
	for _, frag := range fragments {
		if d.isAlignedToGrid(frag, grid) {
			aligned++
		}
	}
	return float64(aligned) / float64(len(fragments))
}

func (d *GeometricDetector) isAlignedToGrid(frag model.TextFragment, grid *model.TableGrid) bool {
	slack := d.config.AlignmentTolerance * 2
	if nearAny(frag.BBox.Left(), grid.Cols, slack) || nearAny(frag.BBox.Right(), grid.Cols, slack) {
		return true
	}
	row, col := grid.FindCell(frag.BBox.Center())
	if row < 0 {
		return false
	}
	return math.Abs(frag.BBox.Center().X-grid.GetCellBBox(row, col).Center().X) <= slack
}

func nearAny(value float64, offsets []float64, slack float64) bool {
	for _, off := range offsets {
		if math.Abs(value-off) <= slack {
			return true
		}
	}
	return false
}

// calculateLineScore averages the fraction of row and column boundaries
// drawn on the page.
func calculateLineScore(grid *model.TableGrid) float64 {
	if len(grid.HasHLines) == 0 || len(grid.HasVLines) == 0 {
		return 0
	}
	return (fraction(grid.HasHLines) + fraction(grid.HasVLines)) / 2
}

// calculateCellOccupancy is the fraction of cells holding at least one fragment.
func calculateCellOccupancy(fragments []model.TextFragment, grid *model.TableGrid) float64 {
	total := grid.RowCount() * grid.ColCount()
	if total == 0 {
		return 0
	}

	occupied := make(map[[2]int]struct{})
	for _, frag := range fragments {
		if row, col := grid.FindCell(frag.BBox.Center()); row >= 0 {
			occupied[[2]int{row, col}] = struct{}{}
		}
	}
	return float64(len(occupied)) / float64(total)
}

// assignFragmentsToCells places fragments into cells in reading order and
// normalizes the joined cell text. In a ruled grid, a fragment inside a
// merged cell (no vertical rule between two columns on its row) goes to the
// leftmost column of the merge.
func (d *GeometricDetector) assignFragmentsToCells(table *model.Table, l *layout) {
	grid := l.grid
	texts := make(map[[2]int][]string)

	for _, frag := range sortedByReadingOrder(l.fragments) {
		anchor := frag.BBox.Center()
		if !l.ruledCols {
			anchor.X = math.Min(frag.BBox.Left()+l.tolerance, anchor.X)
		}
		row, col := grid.FindCell(anchor)
		if row < 0 {
			continue
		}
		if l.ruledCols {
			for col > 0 && !l.ruledBetween(row, col) {
				col--
			}
		}

		key := [2]int{row, col}
		texts[key] = append(texts[key], frag.Text)
		cell := table.GetCell(row, col)
		cell.BBox = cell.BBox.Union(frag.BBox)
	}

	for key, parts := range texts {
		table.GetCell(key[0], key[1]).Text = textnorm.Normalize(strings.Join(parts, " "))
	}
}

// ruledBetween reports whether a vertical rule separates column col-1 from
// col on the given row.
func (l *layout) ruledBetween(row, col int) bool {
	x := l.grid.Cols[col]
	mid := (l.grid.Rows[row] + l.grid.Rows[row+1]) / 2
	for _, line := range l.verticals {
		if math.Abs((line.Start.X+line.End.X)/2-x) > l.tolerance {
			continue
		}
		lo, hi := math.Min(line.Start.Y, line.End.Y), math.Max(line.Start.Y, line.End.Y)
		if mid >= lo-l.tolerance && mid <= hi+l.tolerance {
			return true
		}
	}
	return false
}

// hasVisibleGrid reports whether at least half of the grid boundaries are
// drawn on the page.
func hasVisibleGrid(grid *model.TableGrid) bool {
	all := append(append([]bool(nil), grid.HasHLines...), grid.HasVLines...)
	if len(all) == 0 {
		return false
	}
	return fraction(all) >= 0.5
}

func fraction(flags []bool) float64 {
	if len(flags) == 0 {
		return 0
	}
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return float64(n) / float64(len(flags))
}

// sortedByReadingOrder returns a copy of fragments ordered top to bottom,
// then left to right.
func sortedByReadingOrder(fragments []model.TextFragment) []model.TextFragment {
	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := sorted[i].BBox.Center().Y, sorted[j].BBox.Center().Y
		if yi != yj {
			return yi > yj
		}
		return sorted[i].BBox.X < sorted[j].BBox.X
	})
	return sorted
}

func fragmentsBBox(fragments []model.TextFragment) model.BBox {
	var b model.BBox
	for _, f := range fragments {
		b = b.Union(f.BBox)
	}
	return b
}
