package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"one per line", "cyl-001\ncyl-002", []string{"CYL-001", "CYL-002"}},
		{"comma separated", "cyl-001, cyl-002,cyl-003", []string{"CYL-001", "CYL-002", "CYL-003"}},
		{"mixed separators and blanks", "cyl-001,\n\n CYL-002 \n,", []string{"CYL-001", "CYL-002"}},
		{"duplicates dropped", "cyl-001\nCYL-001\ncyl-001", []string{"CYL-001"}},
		{"whitespace only", "  \n , \n", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIDList(tt.in))
		})
	}
}
