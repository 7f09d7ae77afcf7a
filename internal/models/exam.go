package models

// Exam mirrors the upstream exam record. Date is an ISO datetime string.
type Exam struct {
	ID         int64  `json:"id"`
	Course     int64  `json:"course"`
	CourseName string `json:"course_name"`
	Date       string `json:"date"`
}
