package dto

// ScheduleForm carries schedule form fields. Course and Teacher are
// required selects; times are "HH:MM" or "HH:MM:SS" strings passed through.
type ScheduleForm struct {
	Course    string `json:"course" validate:"required"`
	Teacher   string `json:"teacher" validate:"required"`
	Room      string `json:"room" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// SchedulePayload is the wire shape for schedule create/update.
type SchedulePayload struct {
	Course    int64  `json:"course"`
	Teacher   int64  `json:"teacher"`
	Room      string `json:"room"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Payload builds the upstream payload, coercing both foreign keys.
func (f ScheduleForm) Payload() (SchedulePayload, error) {
	course, err := foreignKey("course", f.Course)
	if err != nil {
		return SchedulePayload{}, err
	}
	teacher, err := foreignKey("teacher", f.Teacher)
	if err != nil {
		return SchedulePayload{}, err
	}
	return SchedulePayload{
		Course:    course,
		Teacher:   teacher,
		Room:      f.Room,
		DayOfWeek: f.DayOfWeek,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
	}, nil
}
