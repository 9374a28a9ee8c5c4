package output

import (
	"sort"

	"github.com/vburojevic/moncov/internal/domain"
)

// Aggregate validates raw rows and computes per-system coverage. It fails on
// the first invalid row and never returns a partial report.
func Aggregate(rows []domain.RawRecord) ([]domain.SystemCoverage, domain.OverallSummary, error) {
	records, err := domain.ParseRecords(rows)
	if err != nil {
		return nil, domain.OverallSummary{}, err
	}
	systems, overall := AggregateRecords(records)
	return systems, overall, nil
}

// AggregateRecords groups records by system and computes counts and rates.
// Systems are returned sorted by name regardless of input order.
func AggregateRecords(records []domain.MonitorRecord) ([]domain.SystemCoverage, domain.OverallSummary) {
	groups := make(map[string]*domain.SystemCoverage)
	seen := make(map[string]map[domain.MissingMonitor]struct{})

	for _, rec := range records {
		sc, ok := groups[rec.System]
		if !ok {
			sc = &domain.SystemCoverage{System: rec.System}
			groups[rec.System] = sc
			seen[rec.System] = make(map[domain.MissingMonitor]struct{})
		}

		switch {
		case rec.Required && rec.Monitored:
			sc.RequiredTotal++
			sc.RequiredCovered++
		case rec.Required:
			sc.RequiredTotal++
			m := domain.MissingMonitor{Component: rec.Component, Monitor: rec.Monitor}
			if _, dup := seen[rec.System][m]; !dup {
				seen[rec.System][m] = struct{}{}
				sc.MissingRequired = append(sc.MissingRequired, m)
			}
		case rec.Monitored:
			sc.OptionalTotal++
			sc.OptionalCovered++
		default:
			sc.OptionalTotal++
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	systems := make([]domain.SystemCoverage, 0, len(names))
	overall := domain.OverallSummary{Systems: len(names)}
	for _, name := range names {
		sc := groups[name]
		sort.Slice(sc.MissingRequired, func(i, j int) bool {
			return sc.MissingRequired[i].Less(sc.MissingRequired[j])
		})
		sc.CoverageRate = domain.NewRate(sc.RequiredCovered, sc.RequiredTotal)

		overall.RequiredTotal += sc.RequiredTotal
		overall.RequiredCovered += sc.RequiredCovered
		overall.OptionalTotal += sc.OptionalTotal
		overall.OptionalCovered += sc.OptionalCovered

		systems = append(systems, *sc)
	}
	overall.CoverageRate = domain.NewRate(overall.RequiredCovered, overall.RequiredTotal)

	return systems, overall
}
