package models

// Teacher positions as serialized by the upstream API.
const (
	TeacherPositionAssistant          = "assistant"
	TeacherPositionLecturer           = "lecturer"
	TeacherPositionAssociateProfessor = "associate_professor"
	TeacherPositionProfessor          = "professor"
)

// Teacher mirrors the upstream teacher record. Department is an optional
// foreign key; DepartmentName is denormalized by the upstream at read time.
type Teacher struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"full_name"`
	Email          *string `json:"email"`
	Department     *int64  `json:"department"`
	DepartmentName *string `json:"department_name"`
	Position       string  `json:"position"`
}
