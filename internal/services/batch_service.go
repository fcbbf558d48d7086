package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
	"lgasportal/internal/repositories"
	"lgasportal/internal/utils"
)

// BatchStore is the slice of the batch repository the bulk-operations
// flow needs.
type BatchStore interface {
	FindByBatchID(ctx context.Context, batchID, customerScope string) ([]models.BatchCylinder, error)
	BulkUpdate(ctx context.Context, ids []string, customerScope string, fields repositories.BulkUpdateFields) (int64, error)
}

// BatchService backs the bulk operations page: batch lookup, pending
// ID extraction, the bulk update itself, and reconciliation.
type BatchService struct {
	batches  BatchStore
	cache    FleetCache
	timezone *time.Location
	now      func() time.Time
}

func NewBatchService(batches BatchStore, cache FleetCache, timezone *time.Location) *BatchService {
	return &BatchService{
		batches:  batches,
		cache:    cache,
		timezone: timezone,
		now:      time.Now,
	}
}

func (s *BatchService) Lookup(ctx context.Context, session *models.Session, batchID string) ([]models.BatchCylinder, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return nil, fmt.Errorf("batch ID is required: %w", apperrors.ErrValidation)
	}

	scope, visible := visibilityScope(session)
	if !visible {
		return []models.BatchCylinder{}, nil
	}

	cylinders, err := s.batches.FindByBatchID(ctx, batchID, scope)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range cylinders {
		cylinders[i].MarkOverdue(now, s.timezone)
	}
	return cylinders, nil
}

// PendingIDs returns the IDs in a batch that have not come back Full.
// If every unit is already Full it returns the whole batch, so the
// operator always has something to paste into the update form.
func (s *BatchService) PendingIDs(ctx context.Context, session *models.Session, batchID string) ([]string, error) {
	cylinders, err := s.Lookup(ctx, session, batchID)
	if err != nil {
		return nil, err
	}

	pending := []string{}
	all := []string{}
	for _, c := range cylinders {
		all = append(all, c.CylinderID)
		if c.Status != models.StatusFull {
			pending = append(pending, c.CylinderID)
		}
	}
	if len(pending) == 0 {
		return all, nil
	}
	return pending, nil
}

type BulkUpdateRequest struct {
	// IDs is the pasted text block: one cylinder ID per line, commas
	// also accepted.
	IDs         string `json:"ids" binding:"required"`
	NewLocation string `json:"new_location" binding:"required"`
	Status      string `json:"status"`
	BatchID     string `json:"batch_id"`
	Owner       string `json:"owner"`
}

type BulkUpdateResult struct {
	RequestedIDs int   `json:"requested_ids"`
	RowsUpdated  int64 `json:"rows_updated"`
}

// BulkUpdate applies one update to every listed cylinder. Non-admins
// cannot reassign ownership and cannot touch rows outside their own
// client_link, regardless of what the request claims.
func (s *BatchService) BulkUpdate(ctx context.Context, session *models.Session, req *BulkUpdateRequest) (*BulkUpdateResult, error) {
	if req.NewLocation != models.LocationTestingCenter && req.NewLocation != models.LocationGasCompany {
		return nil, fmt.Errorf("unknown location %q: %w", req.NewLocation, apperrors.ErrValidation)
	}

	ids := utils.ParseIDList(req.IDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("please enter at least one cylinder ID: %w", apperrors.ErrValidation)
	}

	fields := repositories.BulkUpdateFields{CurrentLocation: req.NewLocation}

	switch req.Status {
	case "", "No Change":
	case models.StatusEmpty, models.StatusFull, models.StatusDamaged:
		status := req.Status
		fields.Status = &status
	default:
		return nil, fmt.Errorf("unknown status %q: %w", req.Status, apperrors.ErrValidation)
	}

	if batchID := strings.TrimSpace(req.BatchID); batchID != "" {
		fields.BatchID = &batchID
	}

	scope, visible := visibilityScope(session)
	if !visible {
		return nil, fmt.Errorf("no client assigned to this account: %w", apperrors.ErrForbidden)
	}

	if session.Role == models.RoleAdmin {
		if owner := strings.TrimSpace(req.Owner); owner != "" {
			fields.CustomerName = &owner
		}
	} else {
		// Ownership is pinned to the session; the request value is
		// ignored.
		owner := session.ClientLink
		fields.CustomerName = &owner
	}

	updated, err := s.batches.BulkUpdate(ctx, ids, scope, fields)
	if err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateFleetCache(ctx)

	return &BulkUpdateResult{RequestedIDs: len(ids), RowsUpdated: updated}, nil
}

// Reconciliation summarizes how far a batch has progressed through a
// test/refill cycle.
type Reconciliation struct {
	BatchID  string  `json:"batch_id"`
	Total    int     `json:"total"`
	Full     int     `json:"full"`
	Empty    int     `json:"empty"`
	Damaged  int     `json:"damaged"`
	Progress float64 `json:"progress"`
}

func (s *BatchService) Reconcile(ctx context.Context, session *models.Session, batchID string) (*Reconciliation, error) {
	cylinders, err := s.Lookup(ctx, session, batchID)
	if err != nil {
		return nil, err
	}

	rec := &Reconciliation{BatchID: batchID, Total: len(cylinders)}
	for _, c := range cylinders {
		switch c.Status {
		case models.StatusFull:
			rec.Full++
		case models.StatusEmpty:
			rec.Empty++
		case models.StatusDamaged:
			rec.Damaged++
		}
	}
	if rec.Total > 0 {
		rec.Progress = float64(rec.Full) / float64(rec.Total)
	}
	return rec, nil
}
