package response

import (
	"time"

	"servicecenter_ops/internal/domain/entities"
)

type ProgressUpdateResponse struct {
	ID         string    `json:"id"`
	WorkItemID string    `json:"work_item_id"`
	Stage      string    `json:"stage"`
	Percentage int       `json:"percentage"`
	Remarks    string    `json:"remarks,omitempty"`
	UpdatedBy  string    `json:"updated_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromProgressUpdate(u entities.ProgressUpdate) ProgressUpdateResponse {
	return ProgressUpdateResponse{
		ID:         u.ID,
		WorkItemID: u.WorkItemID,
		Stage:      u.Stage,
		Percentage: u.Percentage,
		Remarks:    u.Remarks,
		UpdatedBy:  u.UpdatedBy,
		CreatedAt:  u.CreatedAt,
	}
}

func FromProgressUpdates(updates []entities.ProgressUpdate) []ProgressUpdateResponse {
	res := make([]ProgressUpdateResponse, 0, len(updates))
	for _, u := range updates {
		res = append(res, FromProgressUpdate(u))
	}
	return res
}

type TimeLogResponse struct {
	ID          string    `json:"id"`
	WorkItemID  string    `json:"work_item_id"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromTimeLog(l entities.TimeLog) TimeLogResponse {
	return TimeLogResponse{
		ID:          l.ID,
		WorkItemID:  l.WorkItemID,
		Hours:       l.Hours,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
	}
}

func FromTimeLogs(logs []entities.TimeLog) []TimeLogResponse {
	res := make([]TimeLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, FromTimeLog(l))
	}
	return res
}
