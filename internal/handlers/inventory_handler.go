package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lgasportal/internal/responses"
	"lgasportal/internal/services"
)

// InventoryHandler serves inventory management and the return-penalty
// log. Writes sit behind the admin role gate in routes.
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) AddCylinder(c *gin.Context) {
	var req services.CylinderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	cylinder, err := h.inventoryService.AddCylinder(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Could not add cylinder")
		return
	}

	responses.Success(c, http.StatusCreated, cylinder,
		fmt.Sprintf("Cylinder %s added successfully!", cylinder.CylinderID))
}

func (h *InventoryHandler) UpsertCylinder(c *gin.Context) {
	var req services.CylinderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	// Path param wins over any ID in the body.
	req.CylinderID = c.Param("cylinder_id")

	cylinder, err := h.inventoryService.UpsertCylinder(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Could not save cylinder")
		return
	}

	responses.Success(c, http.StatusOK, cylinder, "Cylinder saved successfully")
}

func (h *InventoryHandler) UpdateCylinder(c *gin.Context) {
	var req services.CylinderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if err := h.inventoryService.UpdateCylinder(c.Request.Context(), c.Param("cylinder_id"), &req); err != nil {
		responses.Error(c, err, "Could not update cylinder")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Cylinder updated successfully")
}

func (h *InventoryHandler) RecordPenalty(c *gin.Context) {
	var req services.PenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	penalty, err := h.inventoryService.RecordPenalty(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Could not record penalty")
		return
	}

	responses.Success(c, http.StatusCreated, penalty, "Penalty recorded")
}

func (h *InventoryHandler) ListPenalties(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	penalties, err := h.inventoryService.ListPenalties(c.Request.Context(), session)
	if err != nil {
		responses.Error(c, err, "Could not load penalty log")
		return
	}

	responses.Success(c, http.StatusOK, penalties, "")
}
