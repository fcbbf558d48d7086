package routes

import (
	"github.com/gin-gonic/gin"

	"lgasportal/internal/handlers"
	"lgasportal/internal/middlewares"
	"lgasportal/internal/services"
)

type InventoryRoutes struct {
	inventoryHandler *handlers.InventoryHandler
	authService      *services.AuthService
}

func NewInventoryRoutes(inventoryHandler *handlers.InventoryHandler, authService *services.AuthService) *InventoryRoutes {
	return &InventoryRoutes{inventoryHandler: inventoryHandler, authService: authService}
}

func (r *InventoryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	cylinders := router.Group("/cylinders")
	cylinders.Use(middlewares.Authenticate(r.authService))
	{
		// Inventory writes are admin-only.
		cylinders.POST("", middlewares.RequireAdmin(), r.inventoryHandler.AddCylinder)
		cylinders.PUT("/:cylinder_id", middlewares.RequireAdmin(), r.inventoryHandler.UpsertCylinder)
		cylinders.PATCH("/:cylinder_id", middlewares.RequireAdmin(), r.inventoryHandler.UpdateCylinder)
	}

	penalties := router.Group("/penalties")
	penalties.Use(middlewares.Authenticate(r.authService))
	{
		// Clients may read their own charges; only admins create them.
		penalties.GET("", r.inventoryHandler.ListPenalties)
		penalties.POST("", middlewares.RequireAdmin(), r.inventoryHandler.RecordPenalty)
	}
}
