package filter

import (
	"github.com/vburojevic/moncov/internal/domain"
)

// Filter determines if a monitor record should be included in a report
type Filter interface {
	// Match returns true if the record passes the filter
	Match(rec *domain.MonitorRecord) bool
}

// Chain combines multiple filters (all must pass)
type Chain struct {
	filters []Filter
}

// NewChain creates a filter chain from multiple filters
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Match returns true only if all filters pass
func (c *Chain) Match(rec *domain.MonitorRecord) bool {
	for _, f := range c.filters {
		if !f.Match(rec) {
			return false
		}
	}
	return true
}

// Add appends a filter to the chain
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Len returns the number of filters in the chain
func (c *Chain) Len() int {
	return len(c.filters)
}

// Apply returns the records that pass f, preserving order. A nil filter
// passes everything.
func Apply(records []domain.MonitorRecord, f Filter) []domain.MonitorRecord {
	if f == nil {
		return records
	}
	out := make([]domain.MonitorRecord, 0, len(records))
	for i := range records {
		if f.Match(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
