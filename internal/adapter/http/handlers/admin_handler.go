package handlers

import (
	"errors"
	"net/http"

	response "servicecenter_ops/internal/adapter/http/dto/response"
	"servicecenter_ops/internal/usecase"
	"servicecenter_ops/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back office dashboard: aggregated counters and
// employee workload.
type AdminHandler struct {
	stats      usecase.IStatsUseCase
	assignment usecase.IAssignmentUseCase
}

func NewAdminHandler(stats usecase.IStatsUseCase, assignment usecase.IAssignmentUseCase) *AdminHandler {
	return &AdminHandler{stats: stats, assignment: assignment}
}

func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.stats.DashboardStats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

func (h *AdminHandler) EmployeeAvailability(c *gin.Context) {
	list, err := h.assignment.AvailableEmployees(c.Request.Context())
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployeeAvailabilities(list))
}

func (h *AdminHandler) EmployeeLoad(c *gin.Context) {
	load, err := h.assignment.CurrentLoad(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee_id": c.Param("id"), "current_load": load})
}

func mapAssignmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
