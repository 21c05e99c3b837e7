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
	errInvalidProgressPayload = pkg.NewDomainErrorSimple("INVALID_PROGRESS_INPUT", "Invalid progress payload", http.StatusBadRequest)
)

// ProgressHandler exposes execution tracking for a single work item:
// progress reports, manual time logs and the work timer.
type ProgressHandler struct {
	usecase usecase.IProgressUseCase
}

func NewProgressHandler(uc usecase.IProgressUseCase) *ProgressHandler {
	return &ProgressHandler{usecase: uc}
}

func (h *ProgressHandler) ReportProgress(c *gin.Context) {
	var payload request.ProgressReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProgressPayload.HTTPStatus, errInvalidProgressPayload.ToHTTPError())
		return
	}

	update, err := h.usecase.ReportProgress(
		c.Request.Context(),
		c.Param("id"),
		payload.ResolveStage(),
		payload.ResolvePercentage(),
		payload.Remarks,
		payload.UpdatedBy,
	)
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProgressUpdate(update))
}

func (h *ProgressHandler) LogTime(c *gin.Context) {
	var payload request.TimeLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProgressPayload.HTTPStatus, errInvalidProgressPayload.ToHTTPError())
		return
	}

	log, err := h.usecase.LogTime(c.Request.Context(), c.Param("id"), payload.Hours, payload.Description)
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTimeLog(log))
}

func (h *ProgressHandler) StartTimer(c *gin.Context) {
	item, err := h.usecase.StartTimer(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkItem(item))
}

func (h *ProgressHandler) PauseTimer(c *gin.Context) {
	item, err := h.usecase.PauseTimer(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkItem(item))
}

func (h *ProgressHandler) ProgressHistory(c *gin.Context) {
	updates, err := h.usecase.ProgressHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProgressUpdates(updates))
}

func (h *ProgressHandler) TimeLogs(c *gin.Context) {
	logs, err := h.usecase.TimeLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeLogs(logs))
}

func mapProgressError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkItemID),
		errors.Is(err, usecase.ErrInvalidPercentage),
		errors.Is(err, usecase.ErrInvalidHours),
		errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkItemNotFound):
		return pkg.NewDomainErrorSimple("WORK_ITEM_NOT_FOUND", "Work item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Work item is in a terminal status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
