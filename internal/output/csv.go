package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/vburojevic/moncov/internal/domain"
)

// CSVHeader is the header row of the csv format.
var CSVHeader = []string{
	"system",
	"required_total",
	"required_covered",
	"coverage_rate",
	"optional_total",
	"optional_covered",
	"missing_required",
}

func renderCSV(w io.Writer, systems []domain.SystemCoverage) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, sc := range systems {
		row := []string{
			sc.System,
			strconv.Itoa(sc.RequiredTotal),
			strconv.Itoa(sc.RequiredCovered),
			sc.CoverageRate.Percent(),
			strconv.Itoa(sc.OptionalTotal),
			strconv.Itoa(sc.OptionalCovered),
			strings.Join(sc.MissingNames(), ", "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
