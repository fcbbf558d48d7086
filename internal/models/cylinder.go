package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cylinder statuses as stored in the cylinders/batch_cylinders tables.
const (
	StatusEmpty   = "Empty"
	StatusFull    = "Full"
	StatusDamaged = "Damaged"
)

// Known cylinder locations.
const (
	LocationTestingCenter = "Testing Center"
	LocationGasCompany    = "Gas Company"
)

// Cylinder matches the cylinders table. Overdue is derived at read time
// from next_test_due and the portal timezone; it is never stored.
type Cylinder struct {
	CylinderID      string          `json:"cylinder_id"`
	CustomerName    string          `json:"customer_name"`
	CapacityKg      decimal.Decimal `json:"capacity_kg"`
	Status          string          `json:"status"`
	CurrentLocation string          `json:"current_location"`
	LocationPIN     string          `json:"location_pin,omitempty"`
	FillPercent     float64         `json:"fill_percent"`
	LastFillDate    *time.Time      `json:"last_fill_date,omitempty"`
	LastTestDate    *time.Time      `json:"last_test_date,omitempty"`
	NextTestDue     *time.Time      `json:"next_test_due,omitempty"`
	Overdue         bool            `json:"overdue"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (c *Cylinder) Prepare() {
	c.CylinderID = strings.ToUpper(strings.TrimSpace(c.CylinderID))
	c.CustomerName = strings.TrimSpace(c.CustomerName)
}

// MarkOverdue sets Overdue when the next test due date has passed,
// evaluated against midnight of the current day in loc.
func (c *Cylinder) MarkOverdue(now time.Time, loc *time.Location) {
	if c.NextTestDue == nil {
		c.Overdue = false
		return
	}
	y, m, d := now.In(loc).Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, loc)
	due := time.Date(c.NextTestDue.Year(), c.NextTestDue.Month(), c.NextTestDue.Day(), 0, 0, 0, 0, loc)
	c.Overdue = due.Before(startOfToday)
}

// BatchCylinder matches the batch_cylinders table used for bulk
// in-transit tracking.
type BatchCylinder struct {
	Cylinder
	BatchID string `json:"batch_id"`
}
