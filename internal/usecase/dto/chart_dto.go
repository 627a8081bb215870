package dto

// ChartSuggestRequest carries a tabular result to pick axes for. Columns
// is optional; when omitted, column order is derived from the row keys.
type ChartSuggestRequest struct {
	Columns []string                 `json:"columns"`
	Data    []map[string]interface{} `json:"data" validate:"required"`
}

// ChartSpec tells the frontend how to render a result set.
type ChartSpec struct {
	Kind    string `json:"kind"`
	X       string `json:"x,omitempty"`
	Y       string `json:"y,omitempty"`
	InvertY bool   `json:"invert_y,omitempty"`
}
