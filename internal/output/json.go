package output

import (
	"encoding/json"
	"io"

	"github.com/vburojevic/moncov/internal/domain"
)

// SchemaVersion is the current version of the JSON report schema.
// Increment this when making breaking changes to the output format.
const SchemaVersion = 1

// JSONReport is the document written by the json format
type JSONReport struct {
	SchemaVersion int                   `json:"schemaVersion"`
	Systems       []JSONSystem          `json:"systems"`
	Overall       domain.OverallSummary `json:"overall"`
}

// JSONSystem is one system entry of a JSONReport
type JSONSystem struct {
	System          string      `json:"system"`
	RequiredTotal   int         `json:"required_total"`
	RequiredCovered int         `json:"required_covered"`
	OptionalTotal   int         `json:"optional_total"`
	OptionalCovered int         `json:"optional_covered"`
	MissingRequired []string    `json:"missing_required"`
	CoverageRate    domain.Rate `json:"coverage_rate"`
}

// NewJSONReport builds the json document for a report.
func NewJSONReport(systems []domain.SystemCoverage, overall domain.OverallSummary) *JSONReport {
	out := &JSONReport{
		SchemaVersion: SchemaVersion,
		Systems:       make([]JSONSystem, 0, len(systems)),
		Overall:       overall,
	}
	for _, sc := range systems {
		out.Systems = append(out.Systems, JSONSystem{
			System:          sc.System,
			RequiredTotal:   sc.RequiredTotal,
			RequiredCovered: sc.RequiredCovered,
			OptionalTotal:   sc.OptionalTotal,
			OptionalCovered: sc.OptionalCovered,
			MissingRequired: sc.MissingNames(),
			CoverageRate:    sc.CoverageRate,
		})
	}
	return out
}

func renderJSON(w io.Writer, systems []domain.SystemCoverage, overall domain.OverallSummary) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // system and monitor names are emitted verbatim
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONReport(systems, overall))
}
