package entities

// DashboardStats is the read-side counter set, recomputed from scratch on
// every call.
type DashboardStats struct {
	TotalVehicles         int
	UpcomingAppointments  int
	OngoingProjects       int
	CompletedAppointments int
	CompletedProjects     int
	CancelledAppointments int
	TotalAppointments     int
	TotalProjects         int
}
