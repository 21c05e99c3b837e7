package response

import (
	"time"

	"servicecenter_ops/internal/domain/entities"
)

type WorkItemResponse struct {
	ID                 string    `json:"id"`
	Kind               string    `json:"kind"`
	CustomerID         string    `json:"customer_id"`
	VehicleID          string    `json:"vehicle_id,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	ServiceID          string    `json:"service_id,omitempty"`
	ServicePrice       float64   `json:"service_price,omitempty"`
	EstimatedMinutes   int       `json:"estimated_minutes,omitempty"`
	Date               string    `json:"date"`
	StartTime          string    `json:"start_time,omitempty"`
	EndTime            string    `json:"end_time,omitempty"`
	EndDate            string    `json:"end_date,omitempty"`
	Status             string    `json:"status"`
	AssignedEmployeeID string    `json:"assigned_employee_id,omitempty"`
	ProgressPercentage int       `json:"progress_percentage"`
	LoggedHours        float64   `json:"logged_hours"`
	TimerRunning       bool      `json:"timer_running"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromWorkItem(item entities.WorkItem) WorkItemResponse {
	return WorkItemResponse{
		ID:                 item.ID,
		Kind:               string(item.Kind),
		CustomerID:         item.CustomerID,
		VehicleID:          item.VehicleID,
		Title:              item.Title,
		Description:        item.Description,
		ServiceID:          item.ServiceID,
		ServicePrice:       item.ServicePrice,
		EstimatedMinutes:   item.EstimatedMinutes,
		Date:               item.Date,
		StartTime:          item.StartTime,
		EndTime:            item.EndTime,
		EndDate:            item.EndDate,
		Status:             string(item.Status),
		AssignedEmployeeID: item.AssignedEmployeeID,
		ProgressPercentage: item.ProgressPercentage,
		LoggedHours:        item.LoggedHours,
		TimerRunning:       item.TimerState == entities.TimerRunning,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
}

func FromWorkItems(items []entities.WorkItem) []WorkItemResponse {
	res := make([]WorkItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, FromWorkItem(item))
	}
	return res
}
