package schedule

// Reshape builds the normalized table from the raw grid, the resolved dates
// and the detected groups.
//
// Day columns are keyed positionally by dates and the trailing column is
// dropped. Every member row takes its group's name; boundary rows and rows
// before the first group are left out. Row order is preserved.
func Reshape(t *RawTable, dates DateWindow, groups []EmployeeGroup) (*Table, error) {
	width := t.ColCount()
	days := DayColumnCount(width)
	if days != dates.Len() {
		return nil, &ColumnCountError{Expected: dates.Len(), Actual: days, Row: -1}
	}
	for i, row := range t.Rows {
		if len(row) != width {
			return nil, &ColumnCountError{Expected: width, Actual: len(row), Row: i}
		}
	}

	names := make([]string, len(t.Rows))
	owned := make([]bool, len(t.Rows))
	for _, g := range groups {
		for i := g.Start; i < g.End && i < len(t.Rows); i++ {
			names[i] = g.Name
			owned[i] = true
		}
	}

	boundary := make(map[int]bool, len(groups))
	for _, g := range groups {
		boundary[g.Boundary] = true
	}

	out := &Table{Dates: dates}
	for i := range t.Rows {
		if boundary[i] {
			continue
		}
		if !owned[i] {
			out.Orphans = append(out.Orphans, i)
			continue
		}
		out.Rows = append(out.Rows, normalizeRow(t, i, names[i], days))
	}
	return out, nil
}

func normalizeRow(t *RawTable, i int, name string, days int) Row {
	r := Row{
		Source:         i,
		JobNumber:      t.Cell(i, ColJobNumber),
		Description:    t.Cell(i, ColDescription),
		Super:          t.Cell(i, ColSuper),
		MixDescription: t.Cell(i, ColMixDescription),
		Shift:          t.Cell(i, ColShift),
		Name:           name,
		Days:           make([]Value, days),
	}
	for d := 0; d < days; d++ {
		r.Days[d] = Coerce(t.Rows[i][FirstDayColumn+d])
	}
	return r
}
