package usecase

import (
	"context"
	"errors"
	"testing"

	"servicecenter_ops/internal/domain/entities"
	mock_interfaces "servicecenter_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssignmentUseCase_CurrentLoad(t *testing.T) {
	t.Run("invalid employee id", func(t *testing.T) {
		u := NewAssignmentUseCase(nil, nil)
		_, err := u.CurrentLoad(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEmployeeID) {
			t.Fatalf("expected ErrInvalidEmployeeID, got %v", err)
		}
	})

	t.Run("employee not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		u := NewAssignmentUseCase(items, employees)
		employees.EXPECT().GetByID(gomock.Any(), "emp-7").Return(entities.Employee{}, nil)

		_, err := u.CurrentLoad(context.Background(), "emp-7")
		if !errors.Is(err, ErrEmployeeNotFound) {
			t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
		}
	})

	t.Run("counts only non-terminal assigned items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		u := NewAssignmentUseCase(items, employees)

		employees.EXPECT().GetByID(gomock.Any(), "emp-7").Return(entities.Employee{ID: "emp-7"}, nil)
		items.EXPECT().ListByEmployeeID(gomock.Any(), "emp-7").Return([]entities.WorkItem{
			{ID: "a", Status: entities.StatusAssigned},
			{ID: "b", Status: entities.StatusInProgress},
			{ID: "c", Status: entities.StatusCompleted},
			{ID: "d", Status: entities.StatusCancelled},
			{ID: "e", Status: entities.StatusRequesting},
		}, nil)

		load, err := u.CurrentLoad(context.Background(), "emp-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if load != 2 {
			t.Fatalf("expected load 2, got %d", load)
		}
	})
}

func TestAssignmentUseCase_AvailableEmployees(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		u := NewAssignmentUseCase(items, employees)
		employees.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		_, err := u.AvailableEmployees(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("availability flag is advisory at five items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		u := NewAssignmentUseCase(items, employees)

		employees.EXPECT().ListAll(gomock.Any()).Return([]entities.Employee{
			{ID: "emp-1", FirstName: "Ana", LastName: "Reyes", Email: "ana@shop.test", Role: "EMPLOYEE"},
			{ID: "emp-2"},
		}, nil)

		busy := make([]entities.WorkItem, 5)
		for i := range busy {
			busy[i] = entities.WorkItem{Status: entities.StatusAssigned}
		}
		items.EXPECT().ListByEmployeeID(gomock.Any(), "emp-1").Return(busy, nil)
		items.EXPECT().ListByEmployeeID(gomock.Any(), "emp-2").Return(nil, nil)

		res, err := u.AvailableEmployees(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(res))
		}
		if res[0].Available || res[0].CurrentLoad != 5 || res[0].Name != "Ana Reyes" {
			t.Fatalf("unexpected first entry: %+v", res[0])
		}
		if !res[1].Available || res[1].Name != "Unknown" {
			t.Fatalf("unexpected second entry: %+v", res[1])
		}
	})
}
