package routes

import (
	"github.com/gin-gonic/gin"

	"lgasportal/internal/handlers"
	"lgasportal/internal/middlewares"
	"lgasportal/internal/services"
)

type FleetRoutes struct {
	fleetHandler *handlers.FleetHandler
	authService  *services.AuthService
}

func NewFleetRoutes(fleetHandler *handlers.FleetHandler, authService *services.AuthService) *FleetRoutes {
	return &FleetRoutes{fleetHandler: fleetHandler, authService: authService}
}

// Dashboard and finder are reachable by every role.
func (r *FleetRoutes) RegisterRoutes(router *gin.RouterGroup) {
	fleet := router.Group("/fleet")
	fleet.Use(middlewares.Authenticate(r.authService))
	{
		fleet.GET("/overview", r.fleetHandler.Overview)
	}

	cylinders := router.Group("/cylinders")
	cylinders.Use(middlewares.Authenticate(r.authService))
	{
		cylinders.GET("/:cylinder_id", r.fleetHandler.FindCylinder)
	}
}
