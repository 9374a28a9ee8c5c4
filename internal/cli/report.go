package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/vburojevic/moncov/internal/domain"
	"github.com/vburojevic/moncov/internal/filter"
	"github.com/vburojevic/moncov/internal/loader"
	"github.com/vburojevic/moncov/internal/output"
	"go.uber.org/zap"
)

// ReportCmd computes coverage statistics and renders them
type ReportCmd struct {
	Input  string `short:"i" default:"${config_input}" placeholder:"PATH" help:"Monitor records file (.json, .csv, .yaml)"`
	Format string `short:"f" default:"${config_format}" help:"Stdout format: table, markdown, csv or json"`
	Output string `short:"o" default:"${config_output}" placeholder:"PATH" help:"Also write the report to a .csv or .md/.markdown file"`

	FilterFlags `embed:""`
}

// Run executes the report command
func (c *ReportCmd) Run(globals *Globals) error {
	// Reject bad options before any input is read.
	format, err := output.ParseFormat(c.Format)
	if err != nil {
		return outputErrorCommon(globals, err)
	}
	var fileFormat output.Format
	if c.Output != "" {
		if fileFormat, err = output.FormatForPath(c.Output); err != nil {
			return outputErrorCommon(globals, err)
		}
	}

	flt, err := c.buildFilter()
	if err != nil {
		return outputErrorCommon(globals, err)
	}

	systems, overall, err := buildReport(globals, c.Input, flt)
	if err != nil {
		return outputErrorCommon(globals, err)
	}

	rendered, err := output.RenderString(systems, overall, format)
	if err != nil {
		return outputErrorCommon(globals, err)
	}
	var fileContent string
	if c.Output != "" {
		if fileContent, err = output.RenderString(systems, overall, fileFormat); err != nil {
			return outputErrorCommon(globals, err)
		}
	}

	// The file goes first so a failed write leaves stdout empty.
	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(fileContent), 0o644); err != nil {
			return outputErrorCommon(globals, &domain.IOError{Op: "write", Path: c.Output, Err: err})
		}
		globals.log().Debug("report written", zap.String("path", c.Output), zap.Stringer("format", fileFormat))
	}

	if _, err := io.WriteString(globals.Stdout, rendered); err != nil {
		return outputErrorCommon(globals, &domain.IOError{Op: "write", Path: "stdout", Err: err})
	}
	if format == output.FormatTable && !globals.Quiet && isTerminal(globals.Stdout) {
		fmt.Fprintln(globals.Stdout, output.StatusText(overall))
	}
	if c.Output != "" && !globals.Quiet {
		fmt.Fprintf(globals.Stderr, "Report written to %s\n", c.Output)
	}

	return nil
}

// buildReport loads the input file, applies record filters and aggregates.
func buildReport(globals *Globals, input string, flt filter.Filter) ([]domain.SystemCoverage, domain.OverallSummary, error) {
	if input == "" {
		return nil, domain.OverallSummary{}, &CLIError{
			Code:    CodeMissingInput,
			Message: "no input file given",
			Hint:    "Pass --input <path> or set defaults.input in .moncov.yaml",
			Err:     errors.New("missing --input"),
		}
	}

	rows, err := loader.Load(input)
	if err != nil {
		return nil, domain.OverallSummary{}, err
	}
	globals.log().Debug("input loaded", zap.String("path", input), zap.Int("rows", len(rows)))

	records, err := domain.ParseRecords(rows)
	if err != nil {
		return nil, domain.OverallSummary{}, err
	}
	kept := filter.Apply(records, flt)
	if len(kept) != len(records) {
		globals.log().Debug("records filtered", zap.Int("kept", len(kept)), zap.Int("dropped", len(records)-len(kept)))
	}

	systems, overall := output.AggregateRecords(kept)
	globals.log().Debug("report aggregated",
		zap.Int("systems", overall.Systems),
		zap.Int("required_total", overall.RequiredTotal),
		zap.Int("required_covered", overall.RequiredCovered))

	return systems, overall, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
