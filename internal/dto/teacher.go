package dto

// TeacherForm carries teacher form fields. Department is the raw select
// value: a numeric id, or "" when no department is chosen.
type TeacherForm struct {
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Department string `json:"department"`
	Position   string `json:"position" validate:"required,oneof=assistant lecturer associate_professor professor"`
}

// TeacherPayload is the wire shape for teacher create/update. Department
// has no omitempty on purpose: an unassigned department must be sent as
// an explicit null.
type TeacherPayload struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department *int64 `json:"department"`
	Position   string `json:"position"`
}

// Payload builds the upstream payload, coercing the department select.
func (f TeacherForm) Payload() (TeacherPayload, error) {
	department, err := optionalForeignKey("department", f.Department)
	if err != nil {
		return TeacherPayload{}, err
	}
	return TeacherPayload{
		FullName:   f.FullName,
		Email:      f.Email,
		Department: department,
		Position:   f.Position,
	}, nil
}
