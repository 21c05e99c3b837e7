package response

import "servicecenter_ops/internal/domain/entities"

type ScheduleResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func FromSchedule(s entities.AppointmentSchedule) ScheduleResponse {
	return ScheduleResponse{
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}
