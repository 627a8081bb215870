package dto

// QueryRequest is a natural-language question about float data.
type QueryRequest struct {
	Query    string `json:"query" validate:"required,min=1"`
	Language string `json:"language" validate:"omitempty,oneof=en es fr hi kn"`
}

// QueryResponse is the answer: a summary sentence, the backing rows and
// a chart suggestion. MapID/MapDest are set when the question resolves
// to a float position so the frontend can draw the route map.
type QueryResponse struct {
	Summary string                   `json:"summary"`
	Columns []string                 `json:"columns,omitempty"`
	Data    []map[string]interface{} `json:"data,omitempty"`
	Chart   *ChartSpec               `json:"chart,omitempty"`
	MapID   string                   `json:"map_id,omitempty"`
	MapDest string                   `json:"map_dest,omitempty"`
	Cached  bool                     `json:"cached"`
}

// ResummarizeRequest re-renders a previous answer in another language.
type ResummarizeRequest struct {
	Query    string `json:"query" validate:"required,min=1"`
	Language string `json:"language" validate:"required,oneof=en es fr hi kn"`
}

// ResummarizeResponse carries only the re-rendered summary.
type ResummarizeResponse struct {
	Summary string `json:"summary"`
}
