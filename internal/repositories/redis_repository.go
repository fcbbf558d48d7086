package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
)

// RedisRepository holds the two pieces of volatile state: login
// sessions keyed by JWT jti, and the short-lived fleet snapshot cache.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

const sessionTTL = 30 * 24 * time.Hour

func (r *RedisRepository) StoreSession(ctx context.Context, jti string, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, "session:"+jti, payload, sessionTTL).Err()
}

func (r *RedisRepository) GetSession(ctx context.Context, jti string) (*models.Session, error) {
	payload, err := r.rdb.Get(ctx, "session:"+jti).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisRepository) DeleteSession(ctx context.Context, jti string) error {
	return r.rdb.Del(ctx, "session:"+jti).Err()
}

// Fleet cache. Key per visibility scope so admin and per-customer
// snapshots never mix.

func fleetKey(scope string) string {
	if scope == "" {
		scope = "all"
	}
	return "fleet:" + scope
}

func (r *RedisRepository) GetFleetCache(ctx context.Context, scope string) ([]models.Cylinder, bool, error) {
	payload, err := r.rdb.Get(ctx, fleetKey(scope)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cylinders []models.Cylinder
	if err := json.Unmarshal(payload, &cylinders); err != nil {
		return nil, false, err
	}
	return cylinders, true, nil
}

func (r *RedisRepository) SetFleetCache(ctx context.Context, scope string, cylinders []models.Cylinder, ttl time.Duration) error {
	payload, err := json.Marshal(cylinders)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, fleetKey(scope), payload, ttl).Err()
}

// InvalidateFleetCache drops every cached snapshot. Called after any
// cylinder write so no scope ever serves stale rows.
func (r *RedisRepository) InvalidateFleetCache(ctx context.Context) error {
	iter := r.rdb.Scan(ctx, 0, "fleet:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
