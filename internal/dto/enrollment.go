package dto

// EnrollmentForm carries enrollment form fields. Student and Course are
// required selects; Grade is optional and only meaningful on update.
type EnrollmentForm struct {
	Student string `json:"student" validate:"required"`
	Course  string `json:"course" validate:"required"`
	Grade   string `json:"grade"`
}

// EnrollmentPayload is the wire shape for enrollment create/update. An
// absent grade is an explicit null; the upstream derives "passed" itself.
type EnrollmentPayload struct {
	Student int64 `json:"student"`
	Course  int64 `json:"course"`
	Grade   *int  `json:"grade"`
}

// Payload builds the upstream payload, coercing both foreign keys.
func (f EnrollmentForm) Payload() (EnrollmentPayload, error) {
	student, err := foreignKey("student", f.Student)
	if err != nil {
		return EnrollmentPayload{}, err
	}
	course, err := foreignKey("course", f.Course)
	if err != nil {
		return EnrollmentPayload{}, err
	}
	grade, err := optionalIntField("grade", f.Grade)
	if err != nil {
		return EnrollmentPayload{}, err
	}
	return EnrollmentPayload{Student: student, Course: course, Grade: grade}, nil
}
