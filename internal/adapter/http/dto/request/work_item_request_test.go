package request

import "testing"

func TestCreateAppointmentRequest_ToInput(t *testing.T) {
	r := CreateAppointmentRequest{
		CustomerID:  " cust-1 ",
		VehicleID:   "veh-1",
		ServiceID:   " svc-1",
		Date:        "2026-03-02 ",
		StartTime:   " 09:00 ",
		Description: "  noisy brakes  ",
		Status:      "COMPLETED",
	}

	input := r.ToInput()
	if input.CustomerID != "cust-1" || input.ServiceID != "svc-1" || input.Date != "2026-03-02" || input.StartTime != "09:00" {
		t.Fatalf("unexpected input: %+v", input)
	}
	// The description keeps user formatting.
	if input.Description != "  noisy brakes  " {
		t.Fatalf("description must not be trimmed, got %q", input.Description)
	}
}

func TestAssignRequest_ResolveEmployeeID(t *testing.T) {
	if got := (AssignRequest{EmployeeID: "  emp-1 "}).ResolveEmployeeID(); got != "emp-1" {
		t.Fatalf("expected emp-1, got %q", got)
	}
	if got := (AssignRequest{EmployeeID: "   "}).ResolveEmployeeID(); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
