package entities

import "time"

// TimeLog is a single logged block of work. Hours are additive onto the work
// item's LoggedHours; entries are never edited or removed.
type TimeLog struct {
	ID          string
	WorkItemID  string
	Hours       float64
	Description string
	CreatedAt   time.Time
}
