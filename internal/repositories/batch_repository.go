package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lgasportal/internal/apperrors"
	"lgasportal/internal/models"
)

const batchColumns = `cylinder_id, batch_id, customer_name, capacity_kg, status, current_location,
	location_pin, fill_percent, last_fill_date, last_test_date, next_test_due, created_at, updated_at`

// BatchRepository tracks cylinders moving together through a
// test/refill cycle (the batch_cylinders table).
type BatchRepository struct {
	pool *pgxpool.Pool
}

func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

func (r *BatchRepository) FindByBatchID(ctx context.Context, batchID, customerScope string) ([]models.BatchCylinder, error) {
	query := `SELECT ` + batchColumns + ` FROM batch_cylinders WHERE batch_id = $1`
	args := []interface{}{batchID}
	if customerScope != "" {
		query += ` AND customer_name = $2`
		args = append(args, customerScope)
	}
	query += ` ORDER BY cylinder_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cylinders := []models.BatchCylinder{}
	for rows.Next() {
		var bc models.BatchCylinder
		if err := scanBatchCylinder(rows, &bc); err != nil {
			return nil, err
		}
		cylinders = append(cylinders, bc)
	}
	return cylinders, rows.Err()
}

// BulkUpdateFields is the payload applied to every listed cylinder.
// Location is always set; the rest only when non-nil.
type BulkUpdateFields struct {
	CurrentLocation string
	Status          *string
	BatchID         *string
	CustomerName    *string
}

// BulkUpdate applies the payload to exactly the rows whose primary key
// is in ids. A non-empty customerScope further restricts the write to
// that customer's rows. Returns the number of rows actually updated.
func (r *BatchRepository) BulkUpdate(ctx context.Context, ids []string, customerScope string, fields BulkUpdateFields) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("empty cylinder ID list: %w", apperrors.ErrValidation)
	}

	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("current_location", fields.CurrentLocation)
	if fields.Status != nil {
		add("status", *fields.Status)
	}
	if fields.BatchID != nil {
		add("batch_id", *fields.BatchID)
	}
	if fields.CustomerName != nil {
		add("customer_name", *fields.CustomerName)
	}

	args = append(args, ids)
	query := fmt.Sprintf(`UPDATE batch_cylinders SET %s, updated_at = NOW() WHERE cylinder_id = ANY($%d)`,
		strings.Join(sets, ", "), len(args))

	if customerScope != "" {
		args = append(args, customerScope)
		query += fmt.Sprintf(` AND customer_name = $%d`, len(args))
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanBatchCylinder(row pgx.Row, bc *models.BatchCylinder) error {
	return row.Scan(
		&bc.CylinderID,
		&bc.BatchID,
		&bc.CustomerName,
		&bc.CapacityKg,
		&bc.Status,
		&bc.CurrentLocation,
		&bc.LocationPIN,
		&bc.FillPercent,
		&bc.LastFillDate,
		&bc.LastTestDate,
		&bc.NextTestDue,
		&bc.CreatedAt,
		&bc.UpdatedAt,
	)
}
