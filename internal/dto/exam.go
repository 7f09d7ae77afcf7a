package dto

// ExamForm carries exam form fields. Date is an ISO datetime string.
type ExamForm struct {
	Course string `json:"course" validate:"required"`
	Date   string `json:"date" validate:"required"`
}

// ExamPayload is the wire shape for exam create/update.
type ExamPayload struct {
	Course int64  `json:"course"`
	Date   string `json:"date"`
}

// Payload builds the upstream payload, coercing the course select.
func (f ExamForm) Payload() (ExamPayload, error) {
	course, err := foreignKey("course", f.Course)
	if err != nil {
		return ExamPayload{}, err
	}
	return ExamPayload{Course: course, Date: f.Date}, nil
}
