package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnPenalty matches the return_penalties table: one row per late
// cylinder return charged against a customer.
type ReturnPenalty struct {
	ID           uuid.UUID       `json:"id"`
	CylinderID   string          `json:"cylinder_id"`
	CustomerName string          `json:"customer_name"`
	DaysOverdue  int             `json:"days_overdue"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (p *ReturnPenalty) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CylinderID = strings.ToUpper(strings.TrimSpace(p.CylinderID))
	p.CustomerName = strings.TrimSpace(p.CustomerName)
}
