package entities

import (
	"strings"
	"time"
)

// WorkItemKind distinguishes the two work-item flavors sharing one lifecycle.
type WorkItemKind string

const (
	KindAppointment WorkItemKind = "APPOINTMENT"
	KindProject     WorkItemKind = "PROJECT"
)

// WorkItemStatus is the canonical five-state lifecycle.
//
// Domain notes:
//   - REQUESTING/ASSIGNED/IN_PROGRESS are transient, COMPLETED/CANCELLED terminal.
//   - Older records carry legacy spellings (PENDING, UPCOMING, APPROVED,
//     ONGOING); NormalizeStatus folds them into the canonical set once at
//     ingestion. The dashboard keeps its own legacy bucket tables so counts
//     stay correct even over unnormalized rows.
type WorkItemStatus string

const (
	StatusRequesting WorkItemStatus = "REQUESTING"
	StatusAssigned   WorkItemStatus = "ASSIGNED"
	StatusInProgress WorkItemStatus = "IN_PROGRESS"
	StatusCompleted  WorkItemStatus = "COMPLETED"
	StatusCancelled  WorkItemStatus = "CANCELLED"
)

// IsTerminal reports whether no further mutation is accepted.
func (s WorkItemStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// legacyStatus maps lowercased historical spellings to the canonical enum.
var legacyStatus = map[string]WorkItemStatus{
	"requesting":  StatusRequesting,
	"pending":     StatusRequesting,
	"assigned":    StatusAssigned,
	"upcoming":    StatusAssigned,
	"approved":    StatusAssigned,
	"in_progress": StatusInProgress,
	"in progress": StatusInProgress,
	"ongoing":     StatusInProgress,
	"completed":   StatusCompleted,
	"cancelled":   StatusCancelled,
	"canceled":    StatusCancelled,
}

// NormalizeStatus folds a raw status string (any historical spelling, any
// case) into the canonical enum. Unknown or empty values default to
// REQUESTING, the state every item is admitted in.
func NormalizeStatus(raw string) WorkItemStatus {
	if s, ok := legacyStatus[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusRequesting
}

// TimerState is the per-item execution timer flag. At most one timer can be
// RUNNING for a given work item; toggles are idempotent.
type TimerState string

const (
	TimerStopped TimerState = "STOPPED"
	TimerRunning TimerState = "RUNNING"
)

// WorkItem is the single canonical shape for Appointments and Projects.
//
// Schedule fields:
//   - Appointment: Date ("2006-01-02") + StartTime/EndTime ("15:04")
//   - Project: Date is the start date, EndDate optional
//
// ServicePrice and EstimatedMinutes are snapshots copied from the offering at
// booking time so later catalog edits never rewrite history.
type WorkItem struct {
	ID                 string
	Kind               WorkItemKind
	CustomerID         string
	VehicleID          string
	Title              string
	Description        string
	ServiceID          string
	ServicePrice       float64
	EstimatedMinutes   int
	Date               string
	StartTime          string
	EndTime            string
	EndDate            string
	Status             WorkItemStatus
	AssignedEmployeeID string
	ProgressPercentage int
	LoggedHours        float64
	TimerState         TimerState
	TimerStartedAt     time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
