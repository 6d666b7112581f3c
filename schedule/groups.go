package schedule

// EmployeeGroup is one employee's block of rows. Boundary is the index of the
// row that carries the name; the members are the half-open range
// [Start, End) that follows it.
type EmployeeGroup struct {
	Name     string
	Boundary int
	Start    int
	End      int
}

// Len returns the number of member rows.
func (g EmployeeGroup) Len() int {
	if g.End < g.Start {
		return 0
	}
	return g.End - g.Start
}

// Members returns the member row indices in order.
func (g EmployeeGroup) Members() []int {
	members := make([]int, 0, g.Len())
	for i := g.Start; i < g.End; i++ {
		members = append(members, i)
	}
	return members
}

// Contains reports whether row is a member of g.
func (g EmployeeGroup) Contains(row int) bool {
	return row >= g.Start && row < g.End
}

// IsBoundaryRow reports whether row of t starts a new employee group: its job
// number, shift and super cells are all empty.
func IsBoundaryRow(t *RawTable, row int) bool {
	return t.Cell(row, ColJobNumber) == "" &&
		t.Cell(row, ColShift) == "" &&
		t.Cell(row, ColSuper) == ""
}

// GroupOption adjusts boundary detection.
type GroupOption func(*groupConfig)

type groupConfig struct {
	requireName bool
}

// RequireName treats a row that matches the boundary predicate but has no
// description as a data row rather than as an unnamed boundary.
func RequireName() GroupOption {
	return func(c *groupConfig) {
		c.requireName = true
	}
}

// BoundaryRows returns the indices of all boundary rows of t, top to bottom.
func BoundaryRows(t *RawTable, opts ...GroupOption) []int {
	var cfg groupConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var rows []int
	for i := range t.Rows {
		if !IsBoundaryRow(t, i) {
			continue
		}
		if cfg.requireName && t.Cell(i, ColDescription) == "" {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

// DetectGroups partitions the rows of t into employee groups. Each group runs
// from the row after its boundary up to the next boundary, the last one to the
// end of the table.
func DetectGroups(t *RawTable, opts ...GroupOption) ([]EmployeeGroup, error) {
	boundaries := BoundaryRows(t, opts...)
	if len(boundaries) == 0 {
		return nil, ErrNoGroupsFound
	}

	groups := make([]EmployeeGroup, len(boundaries))
	for i, b := range boundaries {
		end := len(t.Rows)
		if i+1 < len(boundaries) {
			end = boundaries[i+1]
		}
		groups[i] = EmployeeGroup{
			Name:     t.Cell(b, ColDescription),
			Boundary: b,
			Start:    b + 1,
			End:      end,
		}
	}
	return groups, nil
}
