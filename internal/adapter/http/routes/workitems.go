package routes

import (
	"servicecenter_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices     = "/services"
	PathSlots        = "/slots"
	PathAppointments = "/appointments"
	PathProjects     = "/projects"
	PathWorkItems    = "/work-items"
	PathAdmin        = "/admin"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.ListServices)
		services.GET("/:id", catalogHandler.GetService)
	}

	slots := rg.Group(PathSlots)
	{
		slots.GET("", catalogHandler.ListTimeSlots)
		slots.POST("/plan", catalogHandler.PlanSchedule)
	}
}

func addWorkItemRoutes(rg *gin.RouterGroup, workItemHandler *handlers.WorkItemHandler, progressHandler *handlers.ProgressHandler) {
	rg.POST(PathAppointments, workItemHandler.CreateAppointment)
	rg.POST(PathProjects, workItemHandler.CreateProject)

	workItems := rg.Group(PathWorkItems)
	{
		workItems.GET("", workItemHandler.ListWorkItems)
		workItems.GET("/:id", workItemHandler.GetWorkItem)

		workItems.PATCH("/:id/assign", workItemHandler.Assign)
		workItems.PATCH("/:id/cancel", workItemHandler.Cancel)
		workItems.PATCH("/:id/complete", workItemHandler.Complete)

		workItems.GET("/:id/progress", progressHandler.ProgressHistory)
		workItems.POST("/:id/progress", progressHandler.ReportProgress)
		workItems.GET("/:id/time-logs", progressHandler.TimeLogs)
		workItems.POST("/:id/time-logs", progressHandler.LogTime)
		workItems.POST("/:id/timer/start", progressHandler.StartTimer)
		workItems.POST("/:id/timer/pause", progressHandler.PauseTimer)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, workItemHandler *handlers.WorkItemHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/stats", adminHandler.DashboardStats)
		admin.GET("/work-items/requesting", workItemHandler.ListRequesting)
		admin.GET("/employees/availability", adminHandler.EmployeeAvailability)
		admin.GET("/employees/:id/load", adminHandler.EmployeeLoad)
	}
}
