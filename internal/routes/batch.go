package routes

import (
	"github.com/gin-gonic/gin"

	"lgasportal/internal/handlers"
	"lgasportal/internal/middlewares"
	"lgasportal/internal/models"
	"lgasportal/internal/services"
)

type BatchRoutes struct {
	batchHandler *handlers.BatchHandler
	authService  *services.AuthService
}

func NewBatchRoutes(batchHandler *handlers.BatchHandler, authService *services.AuthService) *BatchRoutes {
	return &BatchRoutes{batchHandler: batchHandler, authService: authService}
}

// Bulk operations are for admins and bulk users; private users never
// see this page.
func (r *BatchRoutes) RegisterRoutes(router *gin.RouterGroup) {
	batches := router.Group("/batches")
	batches.Use(middlewares.Authenticate(r.authService))
	batches.Use(middlewares.RequireRole(models.RoleAdmin, models.RoleBulkUser))
	{
		batches.GET("/:batch_id", r.batchHandler.Lookup)
		batches.GET("/:batch_id/pending-ids", r.batchHandler.PendingIDs)
		batches.GET("/:batch_id/reconciliation", r.batchHandler.Reconcile)
		batches.POST("/bulk-update", r.batchHandler.BulkUpdate)
	}
}
