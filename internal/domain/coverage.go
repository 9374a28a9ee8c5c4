package domain

import (
	"strconv"
)

// Rate is a coverage ratio that may be "not applicable" when there is
// nothing to cover. The zero value is not applicable.
type Rate struct {
	value float64
	valid bool
}

// NewRate returns covered/total, or a not-applicable rate when total is zero.
func NewRate(covered, total int) Rate {
	if total <= 0 {
		return Rate{}
	}
	return Rate{value: float64(covered) / float64(total), valid: true}
}

// Value returns the ratio in [0,1] and whether it is applicable.
func (r Rate) Value() (float64, bool) { return r.value, r.valid }

// Applicable reports whether the rate has a numeric value.
func (r Rate) Applicable() bool { return r.valid }

// Percent renders the rate as "50.0%" or "N/A".
func (r Rate) Percent() string {
	if !r.valid {
		return "N/A"
	}
	return strconv.FormatFloat(r.value*100, 'f', 1, 64) + "%"
}

func (r Rate) String() string { return r.Percent() }

// MarshalJSON encodes the ratio as a number, or null when not applicable.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, r.value, 'g', -1, 64), nil
}

// UnmarshalJSON accepts a number or null.
func (r *Rate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Rate{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*r = Rate{value: v, valid: true}
	return nil
}

// MissingMonitor identifies a required monitor that is not covered
type MissingMonitor struct {
	Component string
	Monitor   string
}

// ComponentSeparator joins component and monitor in qualified names.
// Components may not contain it, so the first occurrence splits the pair.
const ComponentSeparator = "/"

// String qualifies the monitor with its component, e.g. "db/disk".
func (m MissingMonitor) String() string {
	if m.Component == "" {
		return m.Monitor
	}
	return m.Component + ComponentSeparator + m.Monitor
}

// Less orders by component then monitor; unscoped monitors sort first.
func (m MissingMonitor) Less(o MissingMonitor) bool {
	if m.Component != o.Component {
		return m.Component < o.Component
	}
	return m.Monitor < o.Monitor
}

// SystemCoverage holds coverage counts for one system
type SystemCoverage struct {
	System          string           `json:"system"`
	RequiredTotal   int              `json:"required_total"`
	RequiredCovered int              `json:"required_covered"`
	OptionalTotal   int              `json:"optional_total"`
	OptionalCovered int              `json:"optional_covered"`
	MissingRequired []MissingMonitor `json:"-"`
	CoverageRate    Rate             `json:"coverage_rate"`
}

// MissingNames returns the qualified names of missing required monitors.
func (s SystemCoverage) MissingNames() []string {
	names := make([]string, len(s.MissingRequired))
	for i, m := range s.MissingRequired {
		names[i] = m.String()
	}
	return names
}

// OverallSummary aggregates coverage across all systems
type OverallSummary struct {
	Systems         int  `json:"systems"`
	RequiredTotal   int  `json:"required_total"`
	RequiredCovered int  `json:"required_covered"`
	OptionalTotal   int  `json:"optional_total"`
	OptionalCovered int  `json:"optional_covered"`
	CoverageRate    Rate `json:"coverage_rate"`
}
