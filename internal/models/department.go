package models

// Department mirrors the upstream department record.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
