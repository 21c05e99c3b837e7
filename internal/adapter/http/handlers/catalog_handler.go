package handlers

import (
	"errors"
	"net/http"

	request "servicecenter_ops/internal/adapter/http/dto/request"
	response "servicecenter_ops/internal/adapter/http/dto/response"
	"servicecenter_ops/internal/usecase"
	"servicecenter_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSlotPayload = pkg.NewDomainErrorSimple("INVALID_SLOT_INPUT", "Invalid slot payload", http.StatusBadRequest)
)

type CatalogHandler struct {
	catalog usecase.ICatalogUseCase
	planner usecase.ISlotPlannerUseCase
}

func NewCatalogHandler(catalog usecase.ICatalogUseCase, planner usecase.ISlotPlannerUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, planner: planner}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListActiveServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.planner.TimeSlots()})
}

// PlanSchedule previews the end time a booking would get, without creating
// anything.
func (h *CatalogHandler) PlanSchedule(c *gin.Context) {
	var payload request.PlanScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSlotPayload.HTTPStatus, errInvalidSlotPayload.ToHTTPError())
		return
	}

	schedule, err := h.planner.PlanSchedule(c.Request.Context(), payload.ResolveServiceID(), payload.Date, payload.StartTime)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSchedule(schedule))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidSlot):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
