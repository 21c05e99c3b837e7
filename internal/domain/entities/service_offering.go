package entities

import "time"

// ServiceOffering is a bookable catalog entry.
//
// Offerings are read-only from the engine's perspective; the price/duration
// pair is snapshotted onto the work item at booking time, so editing an
// offering never changes existing appointments.
type ServiceOffering struct {
	ID               string
	Name             string
	Description      string
	Price            float64
	EstimatedMinutes int
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
