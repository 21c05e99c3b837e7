package request

import "strings"

type PlanScheduleRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

func (r PlanScheduleRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}
