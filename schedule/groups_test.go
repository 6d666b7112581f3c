package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nameRow returns a boundary row carrying name in the description column.
func nameRow(name string, width int) []string {
	row := make([]string, width)
	row[ColDescription] = name
	return row
}

// jobRow returns a data row with the given job number and day cells. Missing
// day cells are left empty.
func jobRow(job string, width int, days ...string) []string {
	row := make([]string, width)
	row[ColJobNumber] = job
	row[ColDescription] = "Job " + job
	row[ColSuper] = "SUP"
	row[ColMixDescription] = "Mix"
	row[ColShift] = "1"
	for i, d := range days {
		row[FirstDayColumn+i] = d
	}
	return row
}

func nineRowTable(width int) *RawTable {
	return &RawTable{
		Rows: [][]string{
			nameRow("Alice", width),
			jobRow("100", width),
			jobRow("101", width),
			jobRow("102", width),
			nameRow("Bob", width),
			jobRow("200", width),
			jobRow("201", width),
			nameRow("Carol", width),
			jobRow("300", width),
		},
	}
}

func TestDetectGroups(t *testing.T) {
	table := nineRowTable(17)

	groups, err := DetectGroups(table)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	tests := []struct {
		name     string
		boundary int
		members  []int
	}{
		{"Alice", 0, []int{1, 2, 3}},
		{"Bob", 4, []int{5, 6}},
		{"Carol", 7, []int{8}},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.name, groups[i].Name)
		assert.Equal(t, tt.boundary, groups[i].Boundary)
		assert.Equal(t, tt.members, groups[i].Members())
		assert.False(t, groups[i].Contains(tt.boundary), "boundary row must not be its own member")
	}
}

func TestDetectGroups_MemberCountInvariant(t *testing.T) {
	table := nineRowTable(17)

	groups, err := DetectGroups(table)
	require.NoError(t, err)

	total := 0
	for _, g := range groups {
		total += g.Len()
	}
	assert.Equal(t, table.RowCount()-len(groups), total)
}

func TestDetectGroups_NoBoundaries(t *testing.T) {
	table := &RawTable{Rows: [][]string{
		jobRow("100", 17),
		jobRow("101", 17),
	}}

	groups, err := DetectGroups(table)
	assert.ErrorIs(t, err, ErrNoGroupsFound)
	assert.Nil(t, groups)

	_, err = DetectGroups(&RawTable{})
	assert.ErrorIs(t, err, ErrNoGroupsFound)
}

func TestDetectGroups_EmptyGroup(t *testing.T) {
	table := &RawTable{Rows: [][]string{
		nameRow("Alice", 17),
		nameRow("Bob", 17),
		jobRow("200", 17),
	}}

	groups, err := DetectGroups(table)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, 0, groups[0].Len())
	assert.Empty(t, groups[0].Members())
	assert.Equal(t, []int{2}, groups[1].Members())

	warnings := GroupWarnings(groups)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnEmptyGroup, warnings[0].Code)
	assert.Equal(t, 0, warnings[0].Row)
}

func TestIsBoundaryRow(t *testing.T) {
	width := 17
	partial := func(col int, v string) []string {
		row := nameRow("Alice", width)
		row[col] = v
		return row
	}

	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"name row", nameRow("Alice", width), true},
		{"whitespace identifiers", func() []string {
			r := nameRow("Alice", width)
			r[ColJobNumber], r[ColShift], r[ColSuper] = " ", "\t", ""
			return r
		}(), true},
		{"job number present", partial(ColJobNumber, "100"), false},
		{"shift present", partial(ColShift, "2"), false},
		{"super present", partial(ColSuper, "SUP"), false},
		{"mix description only", partial(ColMixDescription, "Mix"), true},
		{"short row", []string{"", "Alice"}, true},
		{"data row", jobRow("100", width), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &RawTable{Rows: [][]string{tt.row}}
			assert.Equal(t, tt.want, IsBoundaryRow(table, 0))
		})
	}
}

func TestDetectGroups_RequireName(t *testing.T) {
	blank := make([]string, 17)
	table := &RawTable{Rows: [][]string{
		nameRow("Alice", 17),
		jobRow("100", 17),
		blank,
		jobRow("101", 17),
	}}

	groups, err := DetectGroups(table)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "", groups[1].Name)
	assert.Equal(t, WarnUnnamedGroup, GroupWarnings(groups)[0].Code)

	groups, err = DetectGroups(table, RequireName())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{1, 2, 3}, groups[0].Members())
}

func TestBoundaryRows(t *testing.T) {
	assert.Equal(t, []int{0, 4, 7}, BoundaryRows(nineRowTable(17)))
}
