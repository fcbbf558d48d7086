package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarkOverdue(t *testing.T) {
	kuwait := time.FixedZone("AST", 3*60*60)
	now := time.Date(2025, 6, 15, 1, 30, 0, 0, kuwait)

	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tests := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{"no due date", nil, false},
		{"due yesterday", date(2025, 6, 14), true},
		{"due today", date(2025, 6, 15), false},
		{"due tomorrow", date(2025, 6, 16), false},
		{"long past", date(2024, 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cylinder{NextTestDue: tt.due}
			c.MarkOverdue(now, kuwait)
			assert.Equal(t, tt.want, c.Overdue)
		})
	}
}

func TestCylinderPrepareNormalizesID(t *testing.T) {
	c := Cylinder{CylinderID: "  cyl-001 ", CustomerName: " Acme Gas "}
	c.Prepare()

	assert.Equal(t, "CYL-001", c.CylinderID)
	assert.Equal(t, "Acme Gas", c.CustomerName)
}
