package models

// Student statuses as serialized by the upstream API.
const (
	StudentStatusActive        = "active"
	StudentStatusAcademicLeave = "academic_leave"
	StudentStatusExpelled      = "expelled"
	StudentStatusGraduated     = "graduated"
)

// Student mirrors the upstream student record. GPA stays a decimal-as-string
// exactly as the upstream serializes it; the gateway never interprets it.
type Student struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	GPA      string `json:"gpa"`
}
