package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"lgasportal/internal/models"
)

type PenaltyRepository struct {
	pool *pgxpool.Pool
}

func NewPenaltyRepository(pool *pgxpool.Pool) *PenaltyRepository {
	return &PenaltyRepository{pool: pool}
}

func (r *PenaltyRepository) Create(ctx context.Context, penalty *models.ReturnPenalty) error {
	penalty.Prepare()

	query := `
		INSERT INTO return_penalties (id, cylinder_id, customer_name, days_overdue, amount, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		penalty.ID,
		penalty.CylinderID,
		penalty.CustomerName,
		penalty.DaysOverdue,
		penalty.Amount,
		penalty.Note,
		time.Now(),
	)
	return err
}

func (r *PenaltyRepository) List(ctx context.Context, customerScope string) ([]models.ReturnPenalty, error) {
	query := `SELECT id, cylinder_id, customer_name, days_overdue, amount, note, created_at
		FROM return_penalties`
	args := []interface{}{}
	if customerScope != "" {
		query += ` WHERE customer_name = $1`
		args = append(args, customerScope)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	penalties := []models.ReturnPenalty{}
	for rows.Next() {
		var p models.ReturnPenalty
		err := rows.Scan(&p.ID, &p.CylinderID, &p.CustomerName, &p.DaysOverdue, &p.Amount, &p.Note, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		penalties = append(penalties, p)
	}
	return penalties, rows.Err()
}
