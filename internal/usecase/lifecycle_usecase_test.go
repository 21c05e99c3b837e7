package usecase

import (
	"context"
	"errors"
	"testing"

	"servicecenter_ops/internal/domain/entities"
	mock_interfaces "servicecenter_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type lifecycleMocks struct {
	items     *mock_interfaces.MockIWorkItemRepository
	employees *mock_interfaces.MockIEmployeeRepository
	vehicles  *mock_interfaces.MockIVehicleRepository
	services  *mock_interfaces.MockIServiceRepository
}

func newLifecycle(t *testing.T) (*LifecycleUseCase, lifecycleMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := lifecycleMocks{
		items:     mock_interfaces.NewMockIWorkItemRepository(ctrl),
		employees: mock_interfaces.NewMockIEmployeeRepository(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
	}
	planner := NewSlotPlannerUseCase(m.services)
	return NewLifecycleUseCase(m.items, m.employees, m.vehicles, m.services, planner), m, ctrl
}

func TestLifecycleUseCase_CreateAppointment(t *testing.T) {
	validInput := CreateAppointmentInput{
		CustomerID: "cust-1",
		VehicleID:  "veh-1",
		ServiceID:  "srv-1",
		Date:       "2025-11-12",
		StartTime:  "09:00",
	}

	t.Run("missing required fields", func(t *testing.T) {
		u, _, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		for _, input := range []CreateAppointmentInput{
			{},
			{CustomerID: "cust-1", VehicleID: "veh-1", ServiceID: "srv-1", Date: "2025-11-12"},
			{CustomerID: "cust-1", VehicleID: "veh-1", Date: "2025-11-12", StartTime: "09:00"},
			{CustomerID: "cust-1", ServiceID: "srv-1", Date: "2025-11-12", StartTime: "09:00"},
		} {
			if _, err := u.CreateAppointment(context.Background(), input); !errors.Is(err, ErrMissingRequiredField) {
				t.Fatalf("input %+v: expected ErrMissingRequiredField, got %v", input, err)
			}
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)

		_, err := u.CreateAppointment(context.Background(), validInput)
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("invalid slot propagates from planner", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)

		input := validInput
		input.StartTime = "09:15"
		_, err := u.CreateAppointment(context.Background(), input)
		if !errors.Is(err, ErrInvalidSlot) {
			t.Fatalf("expected ErrInvalidSlot, got %v", err)
		}
	})

	t.Run("success admits in REQUESTING with offering snapshot", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()

		offering := entities.ServiceOffering{ID: "srv-1", Name: "Oil Change", Price: 50, EstimatedMinutes: 30, Active: true}
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "srv-1").Return(offering, nil).Times(2)
		m.items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.ID == "" {
					t.Fatalf("expected generated id")
				}
				if item.Status != entities.StatusRequesting || item.AssignedEmployeeID != "" {
					t.Fatalf("expected unassigned REQUESTING item, got %+v", item)
				}
				if item.Kind != entities.KindAppointment || item.Title != "Oil Change" || item.ServicePrice != 50 || item.EstimatedMinutes != 30 {
					t.Fatalf("offering snapshot not applied: %+v", item)
				}
				if item.Date != "2025-11-12" || item.StartTime != "09:00" || item.EndTime != "09:30" {
					t.Fatalf("unexpected schedule: %+v", item)
				}
				if item.TimerState != entities.TimerStopped || item.ProgressPercentage != 0 {
					t.Fatalf("unexpected initial tracking state: %+v", item)
				}
				return item, nil
			},
		)

		if _, err := u.CreateAppointment(context.Background(), validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLifecycleUseCase_CreateProject(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		u, _, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		for _, input := range []CreateProjectInput{
			{},
			{CustomerID: "cust-1", Title: "Restoration", StartDate: "2025-11-01"},
			{CustomerID: "cust-1", Description: "full restore", StartDate: "2025-11-01"},
		} {
			if _, err := u.CreateProject(context.Background(), input); !errors.Is(err, ErrMissingRequiredField) {
				t.Fatalf("input %+v: expected ErrMissingRequiredField, got %v", input, err)
			}
		}
	})

	t.Run("success forces REQUESTING, vehicle optional", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()

		m.items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.Kind != entities.KindProject || item.Status != entities.StatusRequesting {
					t.Fatalf("unexpected project: %+v", item)
				}
				if item.VehicleID != "" {
					t.Fatalf("expected no vehicle, got %q", item.VehicleID)
				}
				if item.Date != "2025-11-01" || item.EndDate != "2025-12-01" {
					t.Fatalf("unexpected dates: %+v", item)
				}
				return item, nil
			},
		)

		_, err := u.CreateProject(context.Background(), CreateProjectInput{
			CustomerID:  "cust-1",
			Title:       "Restoration",
			Description: "full restore",
			StartDate:   "2025-11-01",
			EndDate:     "2025-12-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLifecycleUseCase_Assign(t *testing.T) {
	t.Run("item not found", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{}, nil)

		_, err := u.Assign(context.Background(), "item-1", "emp-7")
		if !errors.Is(err, ErrWorkItemNotFound) {
			t.Fatalf("expected ErrWorkItemNotFound, got %v", err)
		}
	})

	t.Run("terminal item rejected", func(t *testing.T) {
		for _, status := range []entities.WorkItemStatus{entities.StatusCompleted, entities.StatusCancelled} {
			u, m, ctrl := newLifecycle(t)
			m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{ID: "item-1", Status: status}, nil)

			_, err := u.Assign(context.Background(), "item-1", "emp-7")
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("status %s: expected ErrInvalidTransition, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("employee not found", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{ID: "item-1", Status: entities.StatusRequesting}, nil)
		m.employees.EXPECT().GetByID(gomock.Any(), "emp-7").Return(entities.Employee{}, nil)

		_, err := u.Assign(context.Background(), "item-1", "emp-7")
		if !errors.Is(err, ErrEmployeeNotFound) {
			t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
		}
	})

	t.Run("requesting item advances to ASSIGNED", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{ID: "item-1", Status: entities.StatusRequesting}, nil)
		m.employees.EXPECT().GetByID(gomock.Any(), "emp-7").Return(entities.Employee{ID: "emp-7"}, nil)
		m.items.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.Status != entities.StatusAssigned || item.AssignedEmployeeID != "emp-7" {
					t.Fatalf("unexpected item after assign: %+v", item)
				}
				return item, nil
			},
		)

		res, err := u.Assign(context.Background(), "item-1", "emp-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AssignedEmployeeID != "emp-7" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("reassign keeps IN_PROGRESS status", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{ID: "item-1", Status: entities.StatusInProgress, AssignedEmployeeID: "emp-7"}, nil)
		m.employees.EXPECT().GetByID(gomock.Any(), "emp-9").Return(entities.Employee{ID: "emp-9"}, nil)
		m.items.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.Status != entities.StatusInProgress || item.AssignedEmployeeID != "emp-9" {
					t.Fatalf("unexpected item after reassign: %+v", item)
				}
				return item, nil
			},
		)

		if _, err := u.Assign(context.Background(), "item-1", "emp-9"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("assign is idempotent for the same employee", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		assigned := entities.WorkItem{ID: "item-1", Status: entities.StatusAssigned, AssignedEmployeeID: "emp-7"}
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(assigned, nil)
		m.employees.EXPECT().GetByID(gomock.Any(), "emp-7").Return(entities.Employee{ID: "emp-7"}, nil)
		m.items.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.Status != assigned.Status || item.AssignedEmployeeID != assigned.AssignedEmployeeID {
					t.Fatalf("repeat assign changed business state: %+v", item)
				}
				return item, nil
			},
		)

		if _, err := u.Assign(context.Background(), "item-1", "emp-7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLifecycleUseCase_CancelAndComplete(t *testing.T) {
	t.Run("cancel requesting item", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{ID: "item-1", Status: entities.StatusRequesting}, nil)
		m.items.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.Status != entities.StatusCancelled {
					t.Fatalf("expected CANCELLED, got %s", item.Status)
				}
				return item, nil
			},
		)

		if _, err := u.Cancel(context.Background(), "item-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancel terminal item rejected", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{ID: "item-1", Status: entities.StatusCancelled}, nil)

		_, err := u.Cancel(context.Background(), "item-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("complete sets percentage and stops timer", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{ID: "item-1", Status: entities.StatusInProgress, ProgressPercentage: 60, TimerState: entities.TimerRunning}, nil)
		m.items.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkItem) (entities.WorkItem, error) {
				if item.Status != entities.StatusCompleted || item.ProgressPercentage != 100 {
					t.Fatalf("unexpected completed item: %+v", item)
				}
				if item.TimerState != entities.TimerStopped {
					t.Fatalf("expected timer stopped on completion")
				}
				return item, nil
			},
		)

		if _, err := u.Complete(context.Background(), "item-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("complete terminal item rejected", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{ID: "item-1", Status: entities.StatusCompleted}, nil)

		_, err := u.Complete(context.Background(), "item-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestLifecycleUseCase_Queries(t *testing.T) {
	t.Run("GetByID not found", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.WorkItem{}, nil)

		_, err := u.GetByID(context.Background(), "item-1")
		if !errors.Is(err, ErrWorkItemNotFound) {
			t.Fatalf("expected ErrWorkItemNotFound, got %v", err)
		}
	})

	t.Run("ListAssignedTo requires employee id", func(t *testing.T) {
		u, _, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		_, err := u.ListAssignedTo(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEmployeeID) {
			t.Fatalf("expected ErrInvalidEmployeeID, got %v", err)
		}
	})

	t.Run("ListAssignedTo scopes by employee", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		expected := []entities.WorkItem{{ID: "item-1", AssignedEmployeeID: "emp-7"}}
		m.items.EXPECT().ListByEmployeeID(gomock.Any(), "emp-7").Return(expected, nil)

		res, err := u.ListAssignedTo(context.Background(), "emp-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "item-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("ListByStatus normalizes legacy spellings", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().ListByStatus(gomock.Any(), entities.StatusAssigned).Return(nil, nil)

		if _, err := u.ListByStatus(context.Background(), "Upcoming"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := u.ListByStatus(context.Background(), "  "); !errors.Is(err, ErrMissingRequiredField) {
			t.Fatalf("expected ErrMissingRequiredField, got %v", err)
		}
	})

	t.Run("ListRequesting feeds the admin queue", func(t *testing.T) {
		u, m, ctrl := newLifecycle(t)
		defer ctrl.Finish()
		m.items.EXPECT().ListByStatus(gomock.Any(), entities.StatusRequesting).Return(nil, nil)

		if _, err := u.ListRequesting(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
