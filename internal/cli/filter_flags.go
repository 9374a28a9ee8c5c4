package cli

import (
	"github.com/vburojevic/moncov/internal/filter"
)

// FilterFlags narrows the records that enter a report
type FilterFlags struct {
	System         []string `name:"system" sep:"," placeholder:"NAME" help:"Only include these systems (repeatable, trailing * wildcard)"`
	ExcludeSystem  []string `name:"exclude-system" sep:"," placeholder:"NAME" help:"Drop these systems (repeatable, trailing * wildcard)"`
	Component      []string `name:"component" sep:"," placeholder:"NAME" help:"Only include these components (repeatable, trailing * wildcard)"`
	ExcludeMonitor string   `name:"exclude-monitor" placeholder:"REGEX" help:"Drop monitors whose name matches this regex"`
}

// buildFilter assembles the record filter chain from flags.
// It returns nil when no filter flag is set.
func (f FilterFlags) buildFilter() (filter.Filter, error) {
	chain := filter.NewChain()
	if len(f.System) > 0 {
		chain.Add(filter.NewSystemFilter(f.System))
	}
	if len(f.ExcludeSystem) > 0 {
		chain.Add(filter.NewExcludeSystemFilter(f.ExcludeSystem))
	}
	if len(f.Component) > 0 {
		chain.Add(filter.NewComponentFilter(f.Component))
	}
	if f.ExcludeMonitor != "" {
		ef, err := filter.NewExcludeMonitorFilter(f.ExcludeMonitor)
		if err != nil {
			return nil, &CLIError{
				Code:    CodeInvalidInput,
				Message: "invalid --exclude-monitor pattern: " + err.Error(),
				Hint:    "Use Go regexp syntax, e.g. --exclude-monitor '^synthetic-'",
				Err:     err,
			}
		}
		chain.Add(ef)
	}
	if chain.Len() == 0 {
		return nil, nil
	}
	return chain, nil
}
