package services

import (
	"context"
	"strings"
	"time"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
	"lgasportal/internal/repositories"
)

// CylinderStore is the slice of the cylinder repository the fleet and
// inventory flows need.
type CylinderStore interface {
	List(ctx context.Context, customerScope string) ([]models.Cylinder, error)
	FindByID(ctx context.Context, cylinderID, customerScope string) (*models.Cylinder, error)
	Insert(ctx context.Context, c *models.Cylinder) error
	Upsert(ctx context.Context, c *models.Cylinder) error
	Update(ctx context.Context, cylinderID string, upd repositories.CylinderUpdate) error
}

// FleetCache is the Redis-backed snapshot cache.
type FleetCache interface {
	GetFleetCache(ctx context.Context, scope string) ([]models.Cylinder, bool, error)
	SetFleetCache(ctx context.Context, scope string, cylinders []models.Cylinder, ttl time.Duration) error
	InvalidateFleetCache(ctx context.Context) error
}

// FleetService backs the dashboard and the cylinder finder: a
// role-scoped read of the cylinders table with a short-lived cache.
type FleetService struct {
	cylinders CylinderStore
	cache     FleetCache
	cacheTTL  time.Duration
	timezone  *time.Location
	now       func() time.Time
}

func NewFleetService(cylinders CylinderStore, cache FleetCache, cacheTTL time.Duration, timezone *time.Location) *FleetService {
	return &FleetService{
		cylinders: cylinders,
		cache:     cache,
		cacheTTL:  cacheTTL,
		timezone:  timezone,
		now:       time.Now,
	}
}

// Overview is the dashboard payload: the visible rows plus the three
// headline metrics.
type Overview struct {
	Total     int               `json:"total"`
	Empty     int               `json:"empty"`
	Overdue   int               `json:"overdue"`
	Cylinders []models.Cylinder `json:"cylinders"`
}

// ListCylinders returns the cylinders visible to the session. The
// scope comes from the session record only, never from client input.
// A non-admin with no client assigned sees nothing.
func (s *FleetService) ListCylinders(ctx context.Context, session *models.Session) ([]models.Cylinder, error) {
	scope, visible := visibilityScope(session)
	if !visible {
		return []models.Cylinder{}, nil
	}

	cylinders, hit, err := s.cache.GetFleetCache(ctx, scope)
	if err != nil || !hit {
		// Cache failures degrade to a direct read.
		cylinders, err = s.cylinders.List(ctx, scope)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetFleetCache(ctx, scope, cylinders, s.cacheTTL)
	}

	now := s.now()
	for i := range cylinders {
		cylinders[i].MarkOverdue(now, s.timezone)
	}
	return cylinders, nil
}

func (s *FleetService) FleetOverview(ctx context.Context, session *models.Session) (*Overview, error) {
	cylinders, err := s.ListCylinders(ctx, session)
	if err != nil {
		return nil, err
	}

	overview := &Overview{Total: len(cylinders), Cylinders: cylinders}
	for _, c := range cylinders {
		if c.Status == models.StatusEmpty {
			overview.Empty++
		}
		if c.Overdue {
			overview.Overdue++
		}
	}
	return overview, nil
}

// FindCylinder looks up one cylinder by its exact ID. Rows outside the
// session's scope report not-found, identical to rows that don't
// exist.
func (s *FleetService) FindCylinder(ctx context.Context, session *models.Session, rawID string) (*models.Cylinder, error) {
	cylinderID := strings.ToUpper(strings.TrimSpace(rawID))
	if cylinderID == "" {
		return nil, apperrors.ErrValidation
	}

	scope, visible := visibilityScope(session)
	if !visible {
		return nil, apperrors.ErrNotFound
	}

	cylinder, err := s.cylinders.FindByID(ctx, cylinderID, scope)
	if err != nil {
		return nil, err
	}
	cylinder.MarkOverdue(s.now(), s.timezone)
	return cylinder, nil
}

// visibilityScope maps a session to the customer_name filter applied
// to every read and write. Admins get the unfiltered view. A non-admin
// without a client_link is visible=false: their scope matches nothing,
// and must not fall through to the admin view.
func visibilityScope(session *models.Session) (scope string, visible bool) {
	if session.Role == models.RoleAdmin {
		return "", true
	}
	if session.ClientLink == "" {
		return "", false
	}
	return session.ClientLink, true
}
