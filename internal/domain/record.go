package domain

import (
	"fmt"
	"strings"
)

// RawRecord is one loosely-typed input row as produced by a loader.
// Values are whatever the source format decoded: strings for CSV,
// strings/bools/float64 for JSON and YAML.
type RawRecord map[string]any

// MonitorRecord is a single validated monitor entry for a system
type MonitorRecord struct {
	System    string `json:"system"`
	Component string `json:"component,omitempty"` // Empty means unscoped
	Monitor   string `json:"monitor"`
	Required  bool   `json:"required"`
	Monitored bool   `json:"monitored"`
}

// Accepted aliases for each field, in lookup order.
var (
	componentKeys = []string{"component", "module"}
	monitorKeys   = []string{"monitor", "metric"}
	monitoredKeys = []string{"monitored", "covered", "active"}
)

// ParseRecord validates a raw row into a MonitorRecord. index is the row's
// 0-based position in the input and is reported on failure.
func ParseRecord(index int, raw RawRecord) (MonitorRecord, error) {
	system, err := requiredString(index, raw, "system")
	if err != nil {
		return MonitorRecord{}, err
	}
	monitor, err := requiredString(index, raw, monitorKeys...)
	if err != nil {
		return MonitorRecord{}, err
	}

	var component string
	if key, v, ok := lookup(raw, componentKeys...); ok && v != nil {
		s, isStr := v.(string)
		if !isStr {
			return MonitorRecord{}, &ValidationError{Index: index, Field: key, Reason: fmt.Sprintf("expected a string, got %T", v)}
		}
		component = strings.TrimSpace(s)
		if strings.Contains(component, ComponentSeparator) {
			return MonitorRecord{}, &ValidationError{Index: index, Field: key, Reason: fmt.Sprintf("must not contain %q", ComponentSeparator)}
		}
	}

	required, err := boolField(index, raw, true, "required")
	if err != nil {
		return MonitorRecord{}, err
	}
	monitored, err := boolField(index, raw, false, monitoredKeys...)
	if err != nil {
		return MonitorRecord{}, err
	}

	return MonitorRecord{
		System:    system,
		Component: component,
		Monitor:   monitor,
		Required:  required,
		Monitored: monitored,
	}, nil
}

// ParseRecords validates every row, stopping at the first invalid one.
func ParseRecords(rows []RawRecord) ([]MonitorRecord, error) {
	records := make([]MonitorRecord, 0, len(rows))
	for i, raw := range rows {
		rec, err := ParseRecord(i, raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseBool interprets the boolean spellings accepted in input files.
func ParseBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case int:
		return intBool(int64(b))
	case int64:
		return intBool(b)
	case float64:
		if b != float64(int64(b)) {
			return false, false
		}
		return intBool(int64(b))
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "y", "1", "on", "enabled":
			return true, true
		case "false", "no", "n", "0", "off", "disabled":
			return false, true
		}
	}
	return false, false
}

func intBool(n int64) (bool, bool) {
	switch n {
	case 0:
		return false, true
	case 1:
		return true, true
	}
	return false, false
}

func lookup(raw RawRecord, keys ...string) (string, any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return k, v, true
		}
	}
	return keys[0], nil, false
}

func requiredString(index int, raw RawRecord, keys ...string) (string, error) {
	key, v, ok := lookup(raw, keys...)
	if !ok || v == nil {
		return "", &ValidationError{Index: index, Field: key, Reason: "field is missing"}
	}
	s, isStr := v.(string)
	if !isStr {
		return "", &ValidationError{Index: index, Field: key, Reason: fmt.Sprintf("expected a string, got %T", v)}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Index: index, Field: key, Reason: "field must not be empty"}
	}
	return s, nil
}

// boolField reads an optional boolean. An absent key or null yields def.
// A present but blank value is rejected like any other non-boolean.
func boolField(index int, raw RawRecord, def bool, keys ...string) (bool, error) {
	key, v, ok := lookup(raw, keys...)
	if !ok || v == nil {
		return def, nil
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return false, &ValidationError{Index: index, Field: key, Reason: "boolean value is empty"}
	}
	b, valid := ParseBool(v)
	if !valid {
		return false, &ValidationError{Index: index, Field: key, Reason: fmt.Sprintf("invalid boolean %v", v)}
	}
	return b, nil
}
