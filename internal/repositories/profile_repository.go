package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	profile.Prepare()

	query := `
		INSERT INTO profiles (id, email, password_hash, role, client_link, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.PasswordHash,
		profile.Role,
		profile.ClientLink,
		profile.FullName,
		time.Now(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation on profiles_email_key
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("profile for %s: %w", profile.Email, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT id, email, password_hash, role, client_link, full_name, created_at, last_login_at
		FROM profiles WHERE id = $1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT id, email, password_hash, role, client_link, full_name, created_at, last_login_at
		FROM profiles WHERE email = $1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *ProfileRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE profiles SET last_login_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *ProfileRepository) scanOne(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.Role,
		&profile.ClientLink,
		&profile.FullName,
		&profile.CreatedAt,
		&profile.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
