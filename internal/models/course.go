package models

// Course mirrors the upstream course record. Teacher is an optional foreign
// key; TeacherName is denormalized by the upstream at read time and may lag
// behind a teacher rename until the course list is next refetched.
type Course struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Credits     int     `json:"credits"`
	Teacher     *int64  `json:"teacher"`
	TeacherName *string `json:"teacher_name"`
}
