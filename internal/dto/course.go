package dto

// CourseForm carries course form fields. Credits arrives as the raw number
// input; Teacher is the raw select value, "" when unassigned.
type CourseForm struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Credits     string `json:"credits" validate:"required"`
	Teacher     string `json:"teacher"`
}

// CoursePayload is the wire shape for course create/update. Teacher has no
// omitempty: an unassigned teacher goes out as an explicit null.
type CoursePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
	Teacher     *int64 `json:"teacher"`
}

// Payload builds the upstream payload, coercing credits and the teacher
// select.
func (f CourseForm) Payload() (CoursePayload, error) {
	credits, err := intField("credits", f.Credits)
	if err != nil {
		return CoursePayload{}, err
	}
	teacher, err := optionalForeignKey("teacher", f.Teacher)
	if err != nil {
		return CoursePayload{}, err
	}
	return CoursePayload{
		Name:        f.Name,
		Description: f.Description,
		Credits:     credits,
		Teacher:     teacher,
	}, nil
}
