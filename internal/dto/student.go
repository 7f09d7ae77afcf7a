package dto

// StudentForm carries student form fields as submitted by the console.
// GPA stays a decimal string; the upstream validates its range.
type StudentForm struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Status   string `json:"status" validate:"required,oneof=active academic_leave expelled graduated"`
	GPA      string `json:"gpa" validate:"required"`
}

// StudentPayload is the wire shape for student create/update.
type StudentPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	GPA      string `json:"gpa"`
}

// Payload builds the upstream payload.
func (f StudentForm) Payload() (StudentPayload, error) {
	return StudentPayload{
		FullName: f.FullName,
		Email:    f.Email,
		Status:   f.Status,
		GPA:      f.GPA,
	}, nil
}
