package models

// Weekday names as stored on schedule events.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ScheduleEvent is a recurring weekly class or activity. Times are plain
// "HH:MM" time-of-day strings with no timezone attached.
type ScheduleEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location,omitempty"`
	Color     string `json:"color"`
}

// ValidWeekday reports whether day is one of the seven weekday names.
func ValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
