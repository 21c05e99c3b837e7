package routes

import (
	"log"
	"strconv"

	_ "servicecenter_ops/docs" // This will be auto-generated
	"servicecenter_ops/internal/adapter/http/handlers"
	repository2 "servicecenter_ops/internal/adapter/persistence/repository"
	"servicecenter_ops/internal/infrastructure/database"
	"servicecenter_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workItemRepo := repository2.NewWorkItemDynamoRepository(ddb)
	progressRepo := repository2.NewProgressUpdateDynamoRepository(ddb)
	timeLogRepo := repository2.NewTimeLogDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceOfferingDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo)
	plannerUseCase := usecase.NewSlotPlannerUseCase(serviceRepo)
	lifecycleUseCase := usecase.NewLifecycleUseCase(workItemRepo, employeeRepo, vehicleRepo, serviceRepo, plannerUseCase)
	progressUseCase := usecase.NewProgressUseCase(workItemRepo, progressRepo, timeLogRepo, usecase.WithDerivedTimeOnPause())
	assignmentUseCase := usecase.NewAssignmentUseCase(workItemRepo, employeeRepo)
	statsUseCase := usecase.NewStatsUseCase(workItemRepo, vehicleRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase, plannerUseCase)
	workItemHandler := handlers.NewWorkItemHandler(lifecycleUseCase)
	progressHandler := handlers.NewProgressHandler(progressUseCase)
	adminHandler := handlers.NewAdminHandler(statsUseCase, assignmentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addWorkItemRoutes(v1, workItemHandler, progressHandler)
	addAdminRoutes(v1, adminHandler, workItemHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
