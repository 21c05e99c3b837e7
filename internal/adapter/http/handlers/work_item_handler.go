package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "servicecenter_ops/internal/adapter/http/dto/request"
	response "servicecenter_ops/internal/adapter/http/dto/response"
	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase"
	"servicecenter_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkItemPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ITEM_INPUT", "Invalid work item payload", http.StatusBadRequest)
)

// WorkItemHandler exposes the work item lifecycle: booking, assignment and
// the terminal transitions.
type WorkItemHandler struct {
	usecase usecase.ILifecycleUseCase
}

func NewWorkItemHandler(uc usecase.ILifecycleUseCase) *WorkItemHandler {
	return &WorkItemHandler{usecase: uc}
}

func (h *WorkItemHandler) CreateAppointment(c *gin.Context) {
	var payload request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkItemPayload.HTTPStatus, errInvalidWorkItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.CreateAppointment(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkItem(item))
}

func (h *WorkItemHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkItemPayload.HTTPStatus, errInvalidWorkItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.CreateProject(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkItem(item))
}

func (h *WorkItemHandler) Assign(c *gin.Context) {
	var payload request.AssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkItemPayload.HTTPStatus, errInvalidWorkItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Assign(c.Request.Context(), c.Param("id"), payload.ResolveEmployeeID())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkItem(item))
}

func (h *WorkItemHandler) Cancel(c *gin.Context) {
	item, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkItem(item))
}

func (h *WorkItemHandler) Complete(c *gin.Context) {
	item, err := h.usecase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkItem(item))
}

func (h *WorkItemHandler) GetWorkItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkItem(item))
}

// ListWorkItems lists items, optionally filtered by customer_id,
// employee_id or status. The filters are mutually exclusive, applied in
// that order of precedence.
func (h *WorkItemHandler) ListWorkItems(c *gin.Context) {
	var (
		items []entities.WorkItem
		err   error
	)

	switch {
	case strings.TrimSpace(c.Query("customer_id")) != "":
		items, err = h.usecase.ListByCustomerID(c.Request.Context(), c.Query("customer_id"))
	case strings.TrimSpace(c.Query("employee_id")) != "":
		items, err = h.usecase.ListAssignedTo(c.Request.Context(), c.Query("employee_id"))
	case strings.TrimSpace(c.Query("status")) != "":
		items, err = h.usecase.ListByStatus(c.Request.Context(), c.Query("status"))
	default:
		items, err = h.usecase.ListAll(c.Request.Context())
	}
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkItems(items))
}

func (h *WorkItemHandler) ListRequesting(c *gin.Context) {
	items, err := h.usecase.ListRequesting(c.Request.Context())
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkItems(items))
}

func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkItemID),
		errors.Is(err, usecase.ErrInvalidEmployeeID),
		errors.Is(err, usecase.ErrMissingRequiredField),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidSlot),
		errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkItemNotFound):
		return pkg.NewDomainErrorSimple("WORK_ITEM_NOT_FOUND", "Work item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Work item is in a terminal status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
