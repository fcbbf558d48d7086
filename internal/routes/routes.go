package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lgasportal/internal/handlers"
	"lgasportal/internal/services"
)

func RegisterRoutes(
	router *gin.Engine,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	fleetHandler *handlers.FleetHandler,
	batchHandler *handlers.BatchHandler,
	inventoryHandler *handlers.InventoryHandler,
) {
	api := router.Group("/api/v1")

	NewAuthRoutes(authHandler, authService).RegisterRoutes(api)
	NewFleetRoutes(fleetHandler, authService).RegisterRoutes(api)
	NewBatchRoutes(batchHandler, authService).RegisterRoutes(api)
	NewInventoryRoutes(inventoryHandler, authService).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
