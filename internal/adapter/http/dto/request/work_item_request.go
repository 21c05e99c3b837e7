package request

import (
	"strings"

	"servicecenter_ops/internal/usecase"
)

// CreateAppointmentRequest is the booking payload sent by the customer app.
// A legacy "status" field is still accepted for compatibility with older
// clients but never honored; new items always start in REQUESTING.
type CreateAppointmentRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	VehicleID   string `json:"vehicle_id" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (r CreateAppointmentRequest) ToInput() usecase.CreateAppointmentInput {
	return usecase.CreateAppointmentInput{
		CustomerID:  strings.TrimSpace(r.CustomerID),
		VehicleID:   strings.TrimSpace(r.VehicleID),
		ServiceID:   strings.TrimSpace(r.ServiceID),
		Date:        strings.TrimSpace(r.Date),
		StartTime:   strings.TrimSpace(r.StartTime),
		Description: r.Description,
	}
}

type CreateProjectRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	VehicleID   string `json:"vehicle_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		CustomerID:  strings.TrimSpace(r.CustomerID),
		VehicleID:   strings.TrimSpace(r.VehicleID),
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		StartDate:   strings.TrimSpace(r.StartDate),
		EndDate:     strings.TrimSpace(r.EndDate),
	}
}

type AssignRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

func (r AssignRequest) ResolveEmployeeID() string {
	return strings.TrimSpace(r.EmployeeID)
}
