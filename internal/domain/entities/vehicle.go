package entities

import "time"

// Vehicle is referenced by id from appointments; it is owned by the customer
// registry, not by the lifecycle engine.
type Vehicle struct {
	ID           string
	CustomerID   string
	Make         string
	Model        string
	LicensePlate string
	Year         int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
