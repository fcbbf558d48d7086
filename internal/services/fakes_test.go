package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
	"lgasportal/internal/repositories"
)

// In-memory stand-ins for the Postgres/Redis repositories.

type fakeCylinderStore struct {
	cylinders map[string]models.Cylinder
	listCalls int
	// scopes records every customerScope the service passed down.
	scopes []string
}

func newFakeCylinderStore(cylinders ...models.Cylinder) *fakeCylinderStore {
	s := &fakeCylinderStore{cylinders: map[string]models.Cylinder{}}
	for _, c := range cylinders {
		s.cylinders[c.CylinderID] = c
	}
	return s
}

func (s *fakeCylinderStore) List(_ context.Context, customerScope string) ([]models.Cylinder, error) {
	s.listCalls++
	s.scopes = append(s.scopes, customerScope)
	out := []models.Cylinder{}
	for _, c := range s.cylinders {
		if customerScope == "" || c.CustomerName == customerScope {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCylinderStore) FindByID(_ context.Context, cylinderID, customerScope string) (*models.Cylinder, error) {
	s.scopes = append(s.scopes, customerScope)
	c, ok := s.cylinders[cylinderID]
	if !ok || (customerScope != "" && c.CustomerName != customerScope) {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (s *fakeCylinderStore) Insert(_ context.Context, c *models.Cylinder) error {
	if _, ok := s.cylinders[c.CylinderID]; ok {
		return apperrors.ErrConflict
	}
	s.cylinders[c.CylinderID] = *c
	return nil
}

func (s *fakeCylinderStore) Upsert(_ context.Context, c *models.Cylinder) error {
	s.cylinders[c.CylinderID] = *c
	return nil
}

func (s *fakeCylinderStore) Update(_ context.Context, cylinderID string, upd repositories.CylinderUpdate) error {
	c, ok := s.cylinders[cylinderID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if upd.CustomerName != nil {
		c.CustomerName = *upd.CustomerName
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.CurrentLocation != nil {
		c.CurrentLocation = *upd.CurrentLocation
	}
	if upd.FillPercent != nil {
		c.FillPercent = *upd.FillPercent
	}
	if upd.NextTestDue != nil {
		c.NextTestDue = upd.NextTestDue
	}
	s.cylinders[cylinderID] = c
	return nil
}

type fakeBatchStore struct {
	rows []models.BatchCylinder

	lastIDs    []string
	lastScope  string
	lastFields repositories.BulkUpdateFields
	updated    int64
}

func (s *fakeBatchStore) FindByBatchID(_ context.Context, batchID, customerScope string) ([]models.BatchCylinder, error) {
	out := []models.BatchCylinder{}
	for _, bc := range s.rows {
		if bc.BatchID != batchID {
			continue
		}
		if customerScope != "" && bc.CustomerName != customerScope {
			continue
		}
		out = append(out, bc)
	}
	return out, nil
}

func (s *fakeBatchStore) BulkUpdate(_ context.Context, ids []string, customerScope string, fields repositories.BulkUpdateFields) (int64, error) {
	s.lastIDs = ids
	s.lastScope = customerScope
	s.lastFields = fields

	var updated int64
	for i, bc := range s.rows {
		if !contains(ids, bc.CylinderID) {
			continue
		}
		if customerScope != "" && bc.CustomerName != customerScope {
			continue
		}
		bc.CurrentLocation = fields.CurrentLocation
		if fields.Status != nil {
			bc.Status = *fields.Status
		}
		if fields.BatchID != nil {
			bc.BatchID = *fields.BatchID
		}
		if fields.CustomerName != nil {
			bc.CustomerName = *fields.CustomerName
		}
		s.rows[i] = bc
		updated++
	}
	s.updated = updated
	return updated, nil
}

type fakePenaltyStore struct {
	penalties []models.ReturnPenalty
	scopes    []string
}

func (s *fakePenaltyStore) Create(_ context.Context, p *models.ReturnPenalty) error {
	s.penalties = append(s.penalties, *p)
	return nil
}

func (s *fakePenaltyStore) List(_ context.Context, customerScope string) ([]models.ReturnPenalty, error) {
	s.scopes = append(s.scopes, customerScope)
	out := []models.ReturnPenalty{}
	for _, p := range s.penalties {
		if customerScope == "" || p.CustomerName == customerScope {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCache struct {
	entries     map[string][]models.Cylinder
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]models.Cylinder{}}
}

func (c *fakeCache) GetFleetCache(_ context.Context, scope string) ([]models.Cylinder, bool, error) {
	cylinders, ok := c.entries[scope]
	return cylinders, ok, nil
}

func (c *fakeCache) SetFleetCache(_ context.Context, scope string, cylinders []models.Cylinder, _ time.Duration) error {
	c.entries[scope] = cylinders
	return nil
}

func (c *fakeCache) InvalidateFleetCache(_ context.Context) error {
	c.entries = map[string][]models.Cylinder{}
	c.invalidated++
	return nil
}

type fakeProfileStore struct {
	byEmail map[string]*models.Profile
	byID    map[uuid.UUID]*models.Profile
	touched []uuid.UUID
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		byEmail: map[string]*models.Profile{},
		byID:    map[uuid.UUID]*models.Profile{},
	}
}

func (s *fakeProfileStore) Create(_ context.Context, profile *models.Profile) error {
	profile.Prepare()
	if _, ok := s.byEmail[profile.Email]; ok {
		return apperrors.ErrConflict
	}
	s.byEmail[profile.Email] = profile
	s.byID[profile.ID] = profile
	return nil
}

func (s *fakeProfileStore) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

func (s *fakeProfileStore) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	p, ok := s.byEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

func (s *fakeProfileStore) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	s.touched = append(s.touched, id)
	return nil
}

type fakeSessionStore struct {
	sessions map[string]models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]models.Session{}}
}

func (s *fakeSessionStore) StoreSession(_ context.Context, jti string, session models.Session) error {
	s.sessions[jti] = session
	return nil
}

func (s *fakeSessionStore) GetSession(_ context.Context, jti string) (*models.Session, error) {
	session, ok := s.sessions[jti]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &session, nil
}

func (s *fakeSessionStore) DeleteSession(_ context.Context, jti string) error {
	delete(s.sessions, jti)
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
