package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tsawler/shiftsheet/schedule"
)

func sampleTable() *schedule.Table {
	start := time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)
	return &schedule.Table{
		Dates: schedule.DaysBetween(start, start.AddDate(0, 0, 2)),
		Rows: []schedule.Row{
			{
				JobNumber: "100", Description: "Paving, Main St", Super: "Kim",
				MixDescription: "9.5mm", Shift: "Day", Name: "Alex",
				Days: []schedule.Value{schedule.Bool(true), schedule.Bool(false), schedule.Text("OFF")},
			},
			{
				JobNumber: "101", Description: "Mill | overlay", Super: "Kim",
				MixDescription: "", Shift: "Night", Name: "Alex",
				Days: []schedule.Value{schedule.Bool(false), schedule.Bool(true), schedule.Bool(false)},
			},
		},
	}
}

func TestCSV(t *testing.T) {
	out, err := CSV(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "job_number,description,super,mix_description,shift,name,2023-10-02,2023-10-03,2023-10-04", lines[0])
	assert.Equal(t, `100,"Paving, Main St",Kim,9.5mm,Day,Alex,true,false,OFF`, lines[1])
	assert.Equal(t, "101,Mill | overlay,Kim,,Night,Alex,false,true,false", lines[2])
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleTable())
	lines := strings.Split(strings.TrimSpace(md), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "| job_number | description |"))
	assert.Equal(t, strings.Repeat("|---", 9)+"|", lines[1])
	assert.Contains(t, lines[3], `Mill \| overlay`)
}

func TestMarkdownEmptyTable(t *testing.T) {
	md := Markdown(&schedule.Table{})
	assert.Equal(t, "| job_number | description | super | mix_description | shift | name |\n|---|---|---|---|---|---|\n", md)
}

func TestXLSXRoundTrip(t *testing.T) {
	table := sampleTable()
	data, err := XLSX(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, table.Columns(), rows[0])
	assert.Equal(t, "Paving, Main St", rows[1][1])
	assert.Equal(t, "OFF", rows[1][8])

	typ, err := f.GetCellType(SheetName, "G2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeBool, typ)
}
