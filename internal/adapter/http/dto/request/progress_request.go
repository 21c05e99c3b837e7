package request

import "strings"

type ProgressReportRequest struct {
	Stage      string `json:"stage" binding:"required"`
	Percentage *int   `json:"percentage" binding:"required"`
	Remarks    string `json:"remarks"`
	UpdatedBy  string `json:"updated_by"`
}

// ResolvePercentage distinguishes an omitted percentage from an explicit
// zero; gin's required binding rejects literal 0 on plain ints.
func (r ProgressReportRequest) ResolvePercentage() int {
	if r.Percentage == nil {
		return 0
	}
	return *r.Percentage
}

func (r ProgressReportRequest) ResolveStage() string {
	return strings.ToLower(strings.TrimSpace(r.Stage))
}

type TimeLogRequest struct {
	Hours       float64 `json:"hours" binding:"required"`
	Description string  `json:"description"`
}
