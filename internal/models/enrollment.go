package models

// Enrollment joins a student to a course. EnrollmentDate, StudentName and
// CourseName are read-only on the upstream side; Passed is derived by the
// upstream from the grade.
type Enrollment struct {
	ID             int64  `json:"id"`
	Student        int64  `json:"student"`
	Course         int64  `json:"course"`
	StudentName    string `json:"student_name"`
	CourseName     string `json:"course_name"`
	EnrollmentDate string `json:"enrollment_date"`
	Grade          *int   `json:"grade"`
	Passed         bool   `json:"passed"`
}
