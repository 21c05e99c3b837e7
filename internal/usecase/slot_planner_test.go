package usecase

import (
	"context"
	"errors"
	"testing"

	"servicecenter_ops/internal/domain/entities"
	mock_interfaces "servicecenter_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSlotPlanner_TimeSlots(t *testing.T) {
	u := NewSlotPlannerUseCase(nil)
	slots := u.TimeSlots()
	if len(slots) != 18 {
		t.Fatalf("expected 18 half-hour slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "17:30" {
		t.Fatalf("unexpected slot bounds: %s .. %s", slots[0], slots[len(slots)-1])
	}

	// Mutating the returned slice must not affect the grid.
	slots[0] = "00:00"
	if u.TimeSlots()[0] != "09:00" {
		t.Fatalf("slot grid was mutated through the returned slice")
	}
}

func TestSlotPlanner_PlanSchedule(t *testing.T) {
	t.Run("invalid service id", func(t *testing.T) {
		u := NewSlotPlannerUseCase(nil)
		_, err := u.PlanSchedule(context.Background(), "  ", "2025-11-12", "09:00")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		u := NewSlotPlannerUseCase(nil)
		_, err := u.PlanSchedule(context.Background(), "srv-1", "12/11/2025", "09:00")
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("time outside slot grid", func(t *testing.T) {
		u := NewSlotPlannerUseCase(nil)
		for _, slot := range []string{"08:30", "18:00", "09:15", ""} {
			_, err := u.PlanSchedule(context.Background(), "srv-1", "2025-11-12", slot)
			if !errors.Is(err, ErrInvalidSlot) {
				t.Fatalf("slot %q: expected ErrInvalidSlot, got %v", slot, err)
			}
		}
	})

	t.Run("service repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		u := NewSlotPlannerUseCase(services)

		services.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.ServiceOffering{}, errors.New("db"))

		_, err := u.PlanSchedule(context.Background(), "srv-1", "2025-11-12", "09:00")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("inactive service is not bookable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		u := NewSlotPlannerUseCase(services)

		services.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.ServiceOffering{ID: "srv-1", Active: false}, nil)

		_, err := u.PlanSchedule(context.Background(), "srv-1", "2025-11-12", "09:00")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("end time is start plus estimated duration", func(t *testing.T) {
		cases := []struct {
			start   string
			minutes int
			end     string
		}{
			{"09:00", 30, "09:30"},
			{"09:30", 45, "10:15"},
			{"12:00", 90, "13:30"},
			{"17:30", 30, "18:00"},
			// Late slot plus long service wraps past midnight; the date is
			// left unchanged, matching the source system.
			{"17:30", 480, "01:30"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			services := mock_interfaces.NewMockIServiceRepository(ctrl)
			u := NewSlotPlannerUseCase(services)
			services.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.ServiceOffering{ID: "srv-1", Active: true, EstimatedMinutes: tc.minutes}, nil)

			schedule, err := u.PlanSchedule(context.Background(), "srv-1", "2025-11-12", tc.start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if schedule.Date != "2025-11-12" || schedule.StartTime != tc.start || schedule.EndTime != tc.end {
				t.Fatalf("start %s + %dmin: got %+v, want end %s", tc.start, tc.minutes, schedule, tc.end)
			}
			ctrl.Finish()
		}
	})
}
