package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/vburojevic/moncov/internal/domain"
)

func renderTable(w io.Writer, systems []domain.SystemCoverage, overall domain.OverallSummary) error {
	table := tablewriter.NewWriter(w)
	header := make([]any, len(reportHeaders))
	for i, h := range reportHeaders {
		header[i] = h
	}
	table.Header(header...)
	for _, sc := range systems {
		if err := table.Append(reportRow(sc)); err != nil {
			return fmt.Errorf("append row %q: %w", sc.System, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err := fmt.Fprintln(w, SummaryLine(overall))
	return err
}
