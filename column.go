package main

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // Category
	RoleSecondary
)

type ColumnMeta struct {
	Name     string
	Role     ColumnRole
	MinWidth int
	Weight   float64
	Width    int
}

// recordColumns is the fixed table header: category, detailed time, runner, date.
func recordColumns() []ColumnMeta {
	cols := []ColumnMeta{
		{Name: "Category", Role: RolePrimary},
		{Name: "Time", Role: RoleSecondary},
		{Name: "Runner", Role: RoleNormal},
		{Name: "Date", Role: RoleSecondary},
	}
	for i := range cols {
		cols[i].MinWidth = defaultMinWidthForRole(cols[i].Role)
		cols[i].Weight = defaultWeightForRole(cols[i].Role)
	}
	return cols
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 24 // room for the "Selected" badge
	case RoleSecondary:
		return 14
	default:
		return 10
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 3.0
	case RoleSecondary:
		return 1.0
	default:
		return 2.0
	}
}

// layoutColumns hands every column its MinWidth and spreads what is left of
// totalWidth by weight.
func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		for i := range cols {
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum
	for i := range cols {
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}
	return cols
}
