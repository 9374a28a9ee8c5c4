package output

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vburojevic/moncov/internal/domain"
)

// Format is a report rendering mode
type Format int

const (
	FormatTable Format = iota
	FormatMarkdown
	FormatCSV
	FormatJSON
)

var formatNames = [...]string{
	FormatTable:    "table",
	FormatMarkdown: "markdown",
	FormatCSV:      "csv",
	FormatJSON:     "json",
}

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatTable, FormatMarkdown, FormatCSV, FormatJSON}
}

// FormatNames returns the flag values accepted by ParseFormat.
func FormatNames() []string {
	return append([]string(nil), formatNames[:]...)
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat converts a flag value to a Format
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, &domain.UnsupportedFormatError{Requested: s, Valid: FormatNames()}
}

// outputExtensions maps report file extensions to the format written.
var outputExtensions = []struct {
	ext    string
	format Format
}{
	{".csv", FormatCSV},
	{".md", FormatMarkdown},
	{".markdown", FormatMarkdown},
}

// FormatForPath picks the file format for an --output path by extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	valid := make([]string, 0, len(outputExtensions))
	for _, oe := range outputExtensions {
		if oe.ext == ext {
			return oe.format, nil
		}
		valid = append(valid, oe.ext)
	}
	requested := ext
	if requested == "" {
		requested = path
	}
	return 0, &domain.UnsupportedFormatError{Requested: requested, Valid: valid}
}

// Render writes the report in the given format. All formats render from
// the same aggregated values.
func Render(w io.Writer, systems []domain.SystemCoverage, overall domain.OverallSummary, f Format) error {
	switch f {
	case FormatTable:
		return renderTable(w, systems, overall)
	case FormatMarkdown:
		return renderMarkdown(w, systems, overall)
	case FormatCSV:
		return renderCSV(w, systems)
	case FormatJSON:
		return renderJSON(w, systems, overall)
	default:
		return &domain.UnsupportedFormatError{Requested: f.String(), Valid: FormatNames()}
	}
}

// RenderString is Render into a string.
func RenderString(systems []domain.SystemCoverage, overall domain.OverallSummary, f Format) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, systems, overall, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// reportHeaders are the column titles shared by table and markdown.
var reportHeaders = []string{
	"System",
	"Required",
	"Covered",
	"Coverage",
	"Optional",
	"Optional Covered",
	"Missing Required",
}

// reportRow returns the display cells for one system.
func reportRow(sc domain.SystemCoverage) []string {
	return []string{
		sc.System,
		fmt.Sprint(sc.RequiredTotal),
		fmt.Sprint(sc.RequiredCovered),
		sc.CoverageRate.Percent(),
		fmt.Sprint(sc.OptionalTotal),
		fmt.Sprint(sc.OptionalCovered),
		strings.Join(sc.MissingNames(), ", "),
	}
}

// SummaryLine describes the overall totals in one line.
func SummaryLine(overall domain.OverallSummary) string {
	return fmt.Sprintf("Overall: %d systems, required %d/%d covered (%s), optional %d/%d covered",
		overall.Systems,
		overall.RequiredCovered, overall.RequiredTotal,
		overall.CoverageRate.Percent(),
		overall.OptionalCovered, overall.OptionalTotal)
}
