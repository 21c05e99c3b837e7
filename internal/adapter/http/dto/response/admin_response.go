package response

import "servicecenter_ops/internal/domain/entities"

type DashboardStatsResponse struct {
	TotalVehicles         int `json:"total_vehicles"`
	UpcomingAppointments  int `json:"upcoming_appointments"`
	OngoingProjects       int `json:"ongoing_projects"`
	CompletedAppointments int `json:"completed_appointments"`
	CompletedProjects     int `json:"completed_projects"`
	CancelledAppointments int `json:"cancelled_appointments"`
	TotalAppointments     int `json:"total_appointments"`
	TotalProjects         int `json:"total_projects"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse(s)
}

type EmployeeAvailabilityResponse struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	CurrentLoad int    `json:"current_load"`
	Available   bool   `json:"available"`
}

func FromEmployeeAvailability(a entities.EmployeeAvailability) EmployeeAvailabilityResponse {
	return EmployeeAvailabilityResponse(a)
}

func FromEmployeeAvailabilities(list []entities.EmployeeAvailability) []EmployeeAvailabilityResponse {
	res := make([]EmployeeAvailabilityResponse, 0, len(list))
	for _, a := range list {
		res = append(res, FromEmployeeAvailability(a))
	}
	return res
}
