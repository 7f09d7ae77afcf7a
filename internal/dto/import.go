package dto

// ImportSummary reports the outcome of a bulk student import. Errors keeps
// at most the first ten row errors; TotalErrors counts all of them.
type ImportSummary struct {
	Created     int      `json:"created"`
	TotalRows   int      `json:"total_rows"`
	TotalErrors int      `json:"total_errors"`
	Errors      []string `json:"errors,omitempty"`
}
