package models

// Days of week accepted by the upstream schedule endpoint.
var ScheduleDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Schedule mirrors the upstream schedule slot. Times are kept as the
// upstream's "HH:MM:SS" strings.
type Schedule struct {
	ID          int64  `json:"id"`
	Course      int64  `json:"course"`
	Teacher     int64  `json:"teacher"`
	CourseName  string `json:"course_name"`
	TeacherName string `json:"teacher_name"`
	Room        string `json:"room"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}
