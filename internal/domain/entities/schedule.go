package entities

// AppointmentSchedule is a planned booking window, ready to attach to a new
// appointment. Times are "HH:MM" strings on a single calendar date; the end
// time is derived from the offering's estimated duration.
type AppointmentSchedule struct {
	Date      string
	StartTime string
	EndTime   string
}
