package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lgasportal/internal/responses"
	"lgasportal/internal/services"
)

// FleetHandler serves the dashboard and the cylinder finder.
type FleetHandler struct {
	fleetService *services.FleetService
}

func NewFleetHandler(fleetService *services.FleetService) *FleetHandler {
	return &FleetHandler{fleetService: fleetService}
}

func (h *FleetHandler) Overview(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	overview, err := h.fleetService.FleetOverview(c.Request.Context(), session)
	if err != nil {
		responses.Error(c, err, "Could not load fleet overview")
		return
	}

	message := ""
	if overview.Total == 0 {
		message = "No cylinders found for your account."
	}
	responses.Success(c, http.StatusOK, overview, message)
}

func (h *FleetHandler) FindCylinder(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	cylinder, err := h.fleetService.FindCylinder(c.Request.Context(), session, c.Param("cylinder_id"))
	if err != nil {
		responses.Error(c, err, "Cylinder not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, cylinder, "")
}
