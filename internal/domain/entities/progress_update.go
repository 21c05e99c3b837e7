package entities

import "time"

// Recognized stage labels. Stage is free text; admins may introduce their own
// stages, so these are defaults rather than an enum.
const (
	StageNotStarted = "not started"
	StageInProgress = "in progress"
	StagePaused     = "paused"
	StageCompleted  = "completed"
)

// ProgressUpdate is one append-only entry in a work item's progress history.
type ProgressUpdate struct {
	ID         string
	WorkItemID string
	Stage      string
	Percentage int
	Remarks    string
	UpdatedBy  string
	CreatedAt  time.Time
}
