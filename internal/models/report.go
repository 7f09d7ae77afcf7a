package models

import "encoding/json"

// TopStudent is a row of the top-5 GPA report.
type TopStudent struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	GPA          string `json:"gpa"`
	RankPosition *int   `json:"rank_position,omitempty"`
}

// Debtor is a row of the payment debtors report. Debt arrives as a plain
// JSON number; json.Number preserves the upstream's decimal rendering.
type Debtor struct {
	ID       int64       `json:"id"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Debt     json.Number `json:"debt"`
}

// AboveAverageStudent is a row of the students-above-average report.
type AboveAverageStudent struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	GPA            string  `json:"gpa"`
	CourseAvgGrade float64 `json:"course_avg_grade"`
}
