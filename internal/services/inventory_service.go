package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
	"lgasportal/internal/repositories"
)

// PenaltyStore is the slice of the penalty repository the
// return-penalty log needs.
type PenaltyStore interface {
	Create(ctx context.Context, penalty *models.ReturnPenalty) error
	List(ctx context.Context, customerScope string) ([]models.ReturnPenalty, error)
}

// InventoryService backs the admin-only inventory management page and
// the return-penalty log.
type InventoryService struct {
	cylinders CylinderStore
	penalties PenaltyStore
	cache     FleetCache
}

func NewInventoryService(cylinders CylinderStore, penalties PenaltyStore, cache FleetCache) *InventoryService {
	return &InventoryService{
		cylinders: cylinders,
		penalties: penalties,
		cache:     cache,
	}
}

// dateLayout is the wire format of all date-only fields.
const dateLayout = "2006-01-02"

type CylinderRequest struct {
	CylinderID      string          `json:"cylinder_id"`
	CustomerName    string          `json:"customer_name"`
	CapacityKg      decimal.Decimal `json:"capacity_kg"`
	Status          string          `json:"status"`
	CurrentLocation string          `json:"current_location"`
	LocationPIN     string          `json:"location_pin"`
	FillPercent     float64         `json:"fill_percent"`
	LastFillDate    string          `json:"last_fill_date"`
	LastTestDate    string          `json:"last_test_date"`
	NextTestDue     string          `json:"next_test_due"`
}

// AddCylinder inserts a new cylinder. A blank ID is rejected before
// anything touches the database. New units default to Empty at the
// Testing Center, same as the intake form always did.
func (s *InventoryService) AddCylinder(ctx context.Context, req *CylinderRequest) (*models.Cylinder, error) {
	cylinder, err := s.cylinderFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.cylinders.Insert(ctx, cylinder); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateFleetCache(ctx)
	return cylinder, nil
}

// UpsertCylinder inserts or fully replaces a cylinder record.
func (s *InventoryService) UpsertCylinder(ctx context.Context, req *CylinderRequest) (*models.Cylinder, error) {
	cylinder, err := s.cylinderFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.cylinders.Upsert(ctx, cylinder); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateFleetCache(ctx)
	return cylinder, nil
}

type CylinderUpdateRequest struct {
	CustomerName    *string          `json:"customer_name"`
	CapacityKg      *decimal.Decimal `json:"capacity_kg"`
	Status          *string          `json:"status"`
	CurrentLocation *string          `json:"current_location"`
	LocationPIN     *string          `json:"location_pin"`
	FillPercent     *float64         `json:"fill_percent"`
	LastFillDate    *string          `json:"last_fill_date"`
	LastTestDate    *string          `json:"last_test_date"`
	NextTestDue     *string          `json:"next_test_due"`
}

// UpdateCylinder applies a partial update to one record.
func (s *InventoryService) UpdateCylinder(ctx context.Context, rawID string, req *CylinderUpdateRequest) error {
	cylinderID := strings.ToUpper(strings.TrimSpace(rawID))
	if cylinderID == "" {
		return fmt.Errorf("cylinder ID is required: %w", apperrors.ErrValidation)
	}

	if req.Status != nil && !validStatus(*req.Status) {
		return fmt.Errorf("unknown status %q: %w", *req.Status, apperrors.ErrValidation)
	}

	upd := repositories.CylinderUpdate{
		CustomerName:    req.CustomerName,
		CapacityKg:      req.CapacityKg,
		Status:          req.Status,
		CurrentLocation: req.CurrentLocation,
		LocationPIN:     req.LocationPIN,
		FillPercent:     req.FillPercent,
	}

	var err error
	if upd.LastFillDate, err = parseOptionalDate(req.LastFillDate); err != nil {
		return err
	}
	if upd.LastTestDate, err = parseOptionalDate(req.LastTestDate); err != nil {
		return err
	}
	if upd.NextTestDue, err = parseOptionalDate(req.NextTestDue); err != nil {
		return err
	}

	if err := s.cylinders.Update(ctx, cylinderID, upd); err != nil {
		return err
	}

	_ = s.cache.InvalidateFleetCache(ctx)
	return nil
}

type PenaltyRequest struct {
	CylinderID   string          `json:"cylinder_id" binding:"required"`
	CustomerName string          `json:"customer_name" binding:"required"`
	DaysOverdue  int             `json:"days_overdue"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note"`
}

func (s *InventoryService) RecordPenalty(ctx context.Context, req *PenaltyRequest) (*models.ReturnPenalty, error) {
	if req.DaysOverdue < 0 {
		return nil, fmt.Errorf("days overdue cannot be negative: %w", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("penalty amount cannot be negative: %w", apperrors.ErrValidation)
	}

	penalty := &models.ReturnPenalty{
		CylinderID:   req.CylinderID,
		CustomerName: req.CustomerName,
		DaysOverdue:  req.DaysOverdue,
		Amount:       req.Amount,
		Note:         strings.TrimSpace(req.Note),
	}
	if err := s.penalties.Create(ctx, penalty); err != nil {
		return nil, err
	}
	return penalty, nil
}

// ListPenalties shows admins everything and clients only their own
// charges.
func (s *InventoryService) ListPenalties(ctx context.Context, session *models.Session) ([]models.ReturnPenalty, error) {
	scope, visible := visibilityScope(session)
	if !visible {
		return []models.ReturnPenalty{}, nil
	}
	return s.penalties.List(ctx, scope)
}

func (s *InventoryService) cylinderFromRequest(req *CylinderRequest) (*models.Cylinder, error) {
	cylinder := &models.Cylinder{
		CylinderID:      req.CylinderID,
		CustomerName:    req.CustomerName,
		CapacityKg:      req.CapacityKg,
		Status:          req.Status,
		CurrentLocation: req.CurrentLocation,
		LocationPIN:     req.LocationPIN,
		FillPercent:     req.FillPercent,
	}
	cylinder.Prepare()

	if cylinder.CylinderID == "" {
		return nil, fmt.Errorf("cylinder ID is required: %w", apperrors.ErrValidation)
	}
	if cylinder.CapacityKg.IsNegative() {
		return nil, fmt.Errorf("capacity cannot be negative: %w", apperrors.ErrValidation)
	}

	if cylinder.Status == "" {
		cylinder.Status = models.StatusEmpty
	} else if !validStatus(cylinder.Status) {
		return nil, fmt.Errorf("unknown status %q: %w", cylinder.Status, apperrors.ErrValidation)
	}
	if cylinder.CurrentLocation == "" {
		cylinder.CurrentLocation = models.LocationTestingCenter
	}

	var err error
	if cylinder.LastFillDate, err = parseOptionalDate(optional(req.LastFillDate)); err != nil {
		return nil, err
	}
	if cylinder.LastTestDate, err = parseOptionalDate(optional(req.LastTestDate)); err != nil {
		return nil, err
	}
	if cylinder.NextTestDue, err = parseOptionalDate(optional(req.NextTestDue)); err != nil {
		return nil, err
	}

	return cylinder, nil
}

func validStatus(status string) bool {
	switch status {
	case models.StatusEmpty, models.StatusFull, models.StatusDamaged:
		return true
	}
	return false
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", *raw, apperrors.ErrValidation)
	}
	return &t, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
