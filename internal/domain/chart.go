package domain

import "strings"

// ChartKind is the render hint attached to a query result.
type ChartKind string

const (
	ChartBar     ChartKind = "bar"
	ChartLine    ChartKind = "line"
	ChartScatter ChartKind = "scatter"
	ChartTable   ChartKind = "table"
)

// ChartSelection is the outcome of axis selection. X/Y are empty for bar
// (keyed by column name vs. value) and table kinds. InvertY tells the
// render collaborator to reverse the y axis; it is set whenever the
// y-column name contains "pressure", since pressure grows with depth.
type ChartSelection struct {
	X       string    `json:"x,omitempty"`
	Y       string    `json:"y,omitempty"`
	Kind    ChartKind `json:"kind"`
	InvertY bool      `json:"invert_y,omitempty"`
}

// Keyword priority lists are heuristic and deliberately preserved as-is;
// changing them changes which column wins for ambiguous tables.
var (
	dateYPriority     = []string{"temperature", "temp", "salinity", "pressure"}
	pressureXPriority = []string{"temperature", "salinity", "temp"}
)

// ChooseAxes deterministically picks (x, y, kind) for a table. Rules are
// totally ordered, first match wins; any degenerate input lands on the
// table fallback, never an error.
func ChooseAxes(t Table) ChartSelection {
	numeric := t.NumericColumns()

	// Aggregated single row: bar chart of column name vs. value.
	if len(t.Rows) == 1 && len(numeric) > 0 {
		return ChartSelection{Kind: ChartBar}
	}

	// Date-like column: time series.
	if dateCol, ok := t.DetectDateColumn(); ok {
		for _, pref := range dateYPriority {
			for _, c := range t.Columns {
				if strings.Contains(strings.ToLower(c), pref) && containsColumn(numeric, c) {
					return withInvert(ChartSelection{X: dateCol, Y: c, Kind: ChartLine})
				}
			}
		}
		if len(numeric) > 0 {
			return withInvert(ChartSelection{X: dateCol, Y: numeric[0], Kind: ChartLine})
		}
	}

	// Pressure profile: pressure on y, reversed axis.
	var pressureCol string
	for _, c := range t.Columns {
		if strings.Contains(strings.ToLower(c), "pressure") {
			pressureCol = c
			break
		}
	}
	if pressureCol != "" {
		for _, pref := range pressureXPriority {
			for _, c := range t.Columns {
				if strings.Contains(strings.ToLower(c), pref) && containsColumn(numeric, c) {
					return withInvert(ChartSelection{X: c, Y: pressureCol, Kind: ChartLine})
				}
			}
		}
		for _, c := range numeric {
			if c != pressureCol {
				return withInvert(ChartSelection{X: c, Y: pressureCol, Kind: ChartLine})
			}
		}
	}

	// Two or more numeric columns: scatter in column order.
	if len(numeric) >= 2 {
		return ChartSelection{X: numeric[0], Y: numeric[1], Kind: ChartScatter}
	}

	return ChartSelection{Kind: ChartTable}
}

func withInvert(sel ChartSelection) ChartSelection {
	sel.InvertY = strings.Contains(strings.ToLower(sel.Y), "pressure")
	return sel
}

func containsColumn(cols []string, name string) bool {
	for _, c := range cols {
		if c == name {
			return true
		}
	}
	return false
}
