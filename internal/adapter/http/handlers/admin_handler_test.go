package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicecenter_ops/internal/adapter/http/handlers/mocks"
	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_DashboardStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIStatsUseCase(ctrl)
	assignment := mocks.NewMockIAssignmentUseCase(ctrl)
	h := NewAdminHandler(stats, assignment)

	r := gin.New()
	r.GET("/v1/admin/stats", h.DashboardStats)

	stats.EXPECT().DashboardStats(gomock.Any()).Return(entities.DashboardStats{
		TotalVehicles:        4,
		UpcomingAppointments: 2,
		TotalAppointments:    3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res["total_vehicles"] != float64(4) || res["upcoming_appointments"] != float64(2) {
		t.Fatalf("unexpected body: %v", res)
	}
}

func TestAdminHandler_EmployeeAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	stats := mocks.NewMockIStatsUseCase(ctrl)
	assignment := mocks.NewMockIAssignmentUseCase(ctrl)
	h := NewAdminHandler(stats, assignment)

	r := gin.New()
	r.GET("/v1/admin/employees/availability", h.EmployeeAvailability)

	assignment.EXPECT().AvailableEmployees(gomock.Any()).Return([]entities.EmployeeAvailability{
		{EmployeeID: "emp-1", Name: "Ana Reyes", CurrentLoad: 5, Available: false},
		{EmployeeID: "emp-2", Name: "Unknown", CurrentLoad: 0, Available: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/employees/availability", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(res) != 2 || res[0]["available"] != false || res[1]["available"] != true {
		t.Fatalf("unexpected body: %v", res)
	}
}

func TestAdminHandler_EmployeeLoad(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("employee not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIStatsUseCase(ctrl)
		assignment := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAdminHandler(stats, assignment)

		r := gin.New()
		r.GET("/v1/admin/employees/:id/load", h.EmployeeLoad)

		assignment.EXPECT().CurrentLoad(gomock.Any(), "emp-x").Return(0, usecase.ErrEmployeeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/employees/emp-x/load", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIStatsUseCase(ctrl)
		assignment := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAdminHandler(stats, assignment)

		r := gin.New()
		r.GET("/v1/admin/employees/:id/load", h.EmployeeLoad)

		assignment.EXPECT().CurrentLoad(gomock.Any(), "emp-1").Return(3, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/employees/emp-1/load", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["current_load"] != float64(3) {
			t.Fatalf("unexpected body: %v", res)
		}
	})
}
