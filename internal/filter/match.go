package filter

import (
	"regexp"
	"strings"

	"github.com/vburojevic/moncov/internal/domain"
)

// matchName reports whether name equals pattern, or starts with the
// pattern's prefix when the pattern ends in "*".
func matchName(pattern, name string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}
	return name == pattern
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if matchName(p, name) {
			return true
		}
	}
	return false
}

// SystemFilter keeps records whose system matches one of the patterns
type SystemFilter struct {
	patterns []string
}

// NewSystemFilter creates an inclusion filter for systems (supports trailing * wildcard)
func NewSystemFilter(patterns []string) *SystemFilter {
	return &SystemFilter{patterns: patterns}
}

// Match returns true if the system is listed, or if no systems are listed
func (f *SystemFilter) Match(rec *domain.MonitorRecord) bool {
	return len(f.patterns) == 0 || matchAny(f.patterns, rec.System)
}

// ComponentFilter keeps records whose component matches one of the patterns
type ComponentFilter struct {
	patterns []string
}

// NewComponentFilter creates an inclusion filter for components
func NewComponentFilter(patterns []string) *ComponentFilter {
	return &ComponentFilter{patterns: patterns}
}

// Match returns true if the component is listed, or if no components are listed.
// Unscoped records never match a non-empty component list.
func (f *ComponentFilter) Match(rec *domain.MonitorRecord) bool {
	return len(f.patterns) == 0 || matchAny(f.patterns, rec.Component)
}

// ExcludeSystemFilter drops records from specific systems
type ExcludeSystemFilter struct {
	patterns []string
}

// NewExcludeSystemFilter creates an exclusion filter for systems
func NewExcludeSystemFilter(patterns []string) *ExcludeSystemFilter {
	return &ExcludeSystemFilter{patterns: patterns}
}

// Match returns true if the record's system is NOT in the exclusion list
func (f *ExcludeSystemFilter) Match(rec *domain.MonitorRecord) bool {
	return !matchAny(f.patterns, rec.System)
}

// ExcludeMonitorFilter drops records whose monitor name matches a regex
type ExcludeMonitorFilter struct {
	pattern *regexp.Regexp
}

// NewExcludeMonitorFilter creates an exclusion filter from a pattern string
func NewExcludeMonitorFilter(pattern string) (*ExcludeMonitorFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &ExcludeMonitorFilter{pattern: re}, nil
}

// Match returns true if the monitor does NOT match the exclusion pattern
func (f *ExcludeMonitorFilter) Match(rec *domain.MonitorRecord) bool {
	if f.pattern == nil {
		return true
	}
	return !f.pattern.MatchString(rec.Monitor)
}
