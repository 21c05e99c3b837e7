package entities

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want WorkItemStatus
	}{
		{"REQUESTING", StatusRequesting},
		{"pending", StatusRequesting},
		{"PENDING", StatusRequesting},
		{"ASSIGNED", StatusAssigned},
		{"assigned", StatusAssigned},
		{"Upcoming", StatusAssigned},
		{"Approved", StatusAssigned},
		{"IN_PROGRESS", StatusInProgress},
		{"in progress", StatusInProgress},
		{"Ongoing", StatusInProgress},
		{"COMPLETED", StatusCompleted},
		{"cancelled", StatusCancelled},
		{"CANCELED", StatusCancelled},
		{"  upcoming  ", StatusAssigned},
		{"", StatusRequesting},
		{"garbage", StatusRequesting},
	}
	for _, tc := range cases {
		if got := NormalizeStatus(tc.raw); got != tc.want {
			t.Fatalf("NormalizeStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestWorkItemStatus_IsTerminal(t *testing.T) {
	if !StatusCompleted.IsTerminal() || !StatusCancelled.IsTerminal() {
		t.Fatalf("expected terminal states")
	}
	for _, s := range []WorkItemStatus{StatusRequesting, StatusAssigned, StatusInProgress} {
		if s.IsTerminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
}
