package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lgasportal/internal/responses"
	"lgasportal/internal/services"
)

// BatchHandler serves the bulk management and reconciliation page.
type BatchHandler struct {
	batchService *services.BatchService
}

func NewBatchHandler(batchService *services.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

func (h *BatchHandler) Lookup(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	cylinders, err := h.batchService.Lookup(c.Request.Context(), session, c.Param("batch_id"))
	if err != nil {
		responses.Error(c, err, "Could not look up batch")
		return
	}

	message := ""
	if len(cylinders) == 0 {
		message = "No data found for this Batch ID."
	}
	responses.Success(c, http.StatusOK, cylinders, message)
}

func (h *BatchHandler) PendingIDs(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	ids, err := h.batchService.PendingIDs(c.Request.Context(), session, c.Param("batch_id"))
	if err != nil {
		responses.Error(c, err, "Could not pull pending IDs")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"cylinder_ids": ids}, "")
}

func (h *BatchHandler) BulkUpdate(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	result, err := h.batchService.BulkUpdate(c.Request.Context(), session, &req)
	if err != nil {
		responses.Error(c, err, "Error during update")
		return
	}

	responses.Success(c, http.StatusOK, result,
		fmt.Sprintf("Successfully updated %d cylinders.", result.RowsUpdated))
}

func (h *BatchHandler) Reconcile(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	rec, err := h.batchService.Reconcile(c.Request.Context(), session, c.Param("batch_id"))
	if err != nil {
		responses.Error(c, err, "Could not reconcile batch")
		return
	}

	responses.Success(c, http.StatusOK, rec, "")
}
