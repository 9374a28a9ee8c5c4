package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vburojevic/moncov/internal/domain"
)

func TestCoverageStatus(t *testing.T) {
	tests := []struct {
		name     string
		rate     domain.Rate
		expected string
	}{
		{"not applicable", domain.NewRate(0, 0), "NO REQUIRED MONITORS"},
		{"full coverage", domain.NewRate(10, 10), "OK"},
		{"at healthy threshold", domain.NewRate(9, 10), "OK"},
		{"degraded", domain.NewRate(7, 10), "GAPS DETECTED"},
		{"critical", domain.NewRate(1, 10), "CRITICAL GAPS"},
		{"zero coverage", domain.NewRate(0, 4), "CRITICAL GAPS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoverageStatus(tt.rate))
		})
	}
}

func TestStatusText(t *testing.T) {
	_, overall := AggregateRecords([]domain.MonitorRecord{
		{System: "a", Monitor: "cpu", Required: true},
	})
	assert.Contains(t, StatusText(overall), "CRITICAL GAPS")
}
