package entities

import "time"

// Employee is the assignable workforce record.
type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Role       string
	JoinedDate string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EmployeeAvailability is the advisory load view used by the admin assignment
// screen. Available is a display hint only; assignment is never blocked by it.
type EmployeeAvailability struct {
	EmployeeID  string
	Name        string
	Email       string
	Role        string
	CurrentLoad int
	Available   bool
}
