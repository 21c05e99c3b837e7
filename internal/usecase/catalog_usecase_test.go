package usecase

import (
	"context"
	"errors"
	"testing"

	"servicecenter_ops/internal/domain/entities"
	mock_interfaces "servicecenter_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListActiveServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	services := mock_interfaces.NewMockIServiceRepository(ctrl)
	u := NewCatalogUseCase(services)

	expected := []entities.ServiceOffering{
		{ID: "srv-1", Name: "Oil Change", Active: true},
		{ID: "srv-2", Name: "Tire Rotation", Active: true},
	}
	services.EXPECT().ListActive(gomock.Any()).Return(expected, nil)

	res, err := u.ListActiveServices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].ID != "srv-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCatalogUseCase_GetService(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		u := NewCatalogUseCase(nil)
		_, err := u.GetService(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		u := NewCatalogUseCase(services)
		services.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.ServiceOffering{}, errors.New("db"))

		_, err := u.GetService(context.Background(), "srv-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		u := NewCatalogUseCase(services)
		services.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.ServiceOffering{}, nil)

		_, err := u.GetService(context.Background(), "srv-1")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("inactive offering reported as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		u := NewCatalogUseCase(services)
		services.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.ServiceOffering{ID: "srv-1", Active: false}, nil)

		_, err := u.GetService(context.Background(), "srv-1")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		u := NewCatalogUseCase(services)
		services.EXPECT().GetByID(gomock.Any(), "srv-1").Return(entities.ServiceOffering{ID: "srv-1", Name: "Oil Change", Active: true}, nil)

		res, err := u.GetService(context.Background(), " srv-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "srv-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
