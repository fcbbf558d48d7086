package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
)

const cylinderColumns = `cylinder_id, customer_name, capacity_kg, status, current_location,
	location_pin, fill_percent, last_fill_date, last_test_date, next_test_due, created_at, updated_at`

type CylinderRepository struct {
	pool *pgxpool.Pool
}

func NewCylinderRepository(pool *pgxpool.Pool) *CylinderRepository {
	return &CylinderRepository{pool: pool}
}

// List returns every cylinder, or only one customer's rows when
// customerScope is non-empty. An empty scope is the admin view.
func (r *CylinderRepository) List(ctx context.Context, customerScope string) ([]models.Cylinder, error) {
	query := `SELECT ` + cylinderColumns + ` FROM cylinders`
	args := []interface{}{}
	if customerScope != "" {
		query += ` WHERE customer_name = $1`
		args = append(args, customerScope)
	}
	query += ` ORDER BY cylinder_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cylinders := []models.Cylinder{}
	for rows.Next() {
		var c models.Cylinder
		if err := scanCylinder(rows, &c); err != nil {
			return nil, err
		}
		cylinders = append(cylinders, c)
	}
	return cylinders, rows.Err()
}

func (r *CylinderRepository) FindByID(ctx context.Context, cylinderID, customerScope string) (*models.Cylinder, error) {
	query := `SELECT ` + cylinderColumns + ` FROM cylinders WHERE cylinder_id = $1`
	args := []interface{}{cylinderID}
	if customerScope != "" {
		query += ` AND customer_name = $2`
		args = append(args, customerScope)
	}

	var c models.Cylinder
	err := scanCylinder(r.pool.QueryRow(ctx, query, args...), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CylinderRepository) Insert(ctx context.Context, c *models.Cylinder) error {
	c.Prepare()

	query := `
		INSERT INTO cylinders (cylinder_id, customer_name, capacity_kg, status, current_location,
			location_pin, fill_percent, last_fill_date, last_test_date, next_test_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		c.CylinderID, c.CustomerName, c.CapacityKg, c.Status, c.CurrentLocation,
		c.LocationPIN, c.FillPercent, c.LastFillDate, c.LastTestDate, c.NextTestDue,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("cylinder %s: %w", c.CylinderID, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// Upsert inserts the cylinder or, if the ID is already present,
// overwrites its mutable columns.
func (r *CylinderRepository) Upsert(ctx context.Context, c *models.Cylinder) error {
	c.Prepare()

	query := `
		INSERT INTO cylinders (cylinder_id, customer_name, capacity_kg, status, current_location,
			location_pin, fill_percent, last_fill_date, last_test_date, next_test_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (cylinder_id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			capacity_kg = EXCLUDED.capacity_kg,
			status = EXCLUDED.status,
			current_location = EXCLUDED.current_location,
			location_pin = EXCLUDED.location_pin,
			fill_percent = EXCLUDED.fill_percent,
			last_fill_date = EXCLUDED.last_fill_date,
			last_test_date = EXCLUDED.last_test_date,
			next_test_due = EXCLUDED.next_test_due,
			updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query,
		c.CylinderID, c.CustomerName, c.CapacityKg, c.Status, c.CurrentLocation,
		c.LocationPIN, c.FillPercent, c.LastFillDate, c.LastTestDate, c.NextTestDue,
	)
	return err
}

// CylinderUpdate carries the optional fields of a partial update. Nil
// fields are left untouched.
type CylinderUpdate struct {
	CustomerName    *string
	CapacityKg      *decimal.Decimal
	Status          *string
	CurrentLocation *string
	LocationPIN     *string
	FillPercent     *float64
	LastFillDate    *time.Time
	LastTestDate    *time.Time
	NextTestDue     *time.Time
}

func (r *CylinderRepository) Update(ctx context.Context, cylinderID string, upd CylinderUpdate) error {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.CustomerName != nil {
		add("customer_name", *upd.CustomerName)
	}
	if upd.CapacityKg != nil {
		add("capacity_kg", *upd.CapacityKg)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.CurrentLocation != nil {
		add("current_location", *upd.CurrentLocation)
	}
	if upd.LocationPIN != nil {
		add("location_pin", *upd.LocationPIN)
	}
	if upd.FillPercent != nil {
		add("fill_percent", *upd.FillPercent)
	}
	if upd.LastFillDate != nil {
		add("last_fill_date", *upd.LastFillDate)
	}
	if upd.LastTestDate != nil {
		add("last_test_date", *upd.LastTestDate)
	}
	if upd.NextTestDue != nil {
		add("next_test_due", *upd.NextTestDue)
	}

	if len(sets) == 0 {
		return fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	args = append(args, cylinderID)
	query := fmt.Sprintf(`UPDATE cylinders SET %s, updated_at = NOW() WHERE cylinder_id = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cylinder %s: %w", cylinderID, apperrors.ErrNotFound)
	}
	return nil
}

func scanCylinder(row pgx.Row, c *models.Cylinder) error {
	return row.Scan(
		&c.CylinderID,
		&c.CustomerName,
		&c.CapacityKg,
		&c.Status,
		&c.CurrentLocation,
		&c.LocationPIN,
		&c.FillPercent,
		&c.LastFillDate,
		&c.LastTestDate,
		&c.NextTestDue,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}
