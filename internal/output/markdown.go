package output

import (
	"io"
	"strings"

	"github.com/vburojevic/moncov/internal/domain"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func renderMarkdown(w io.Writer, systems []domain.SystemCoverage, overall domain.OverallSummary) error {
	var b strings.Builder

	writeMarkdownRow(&b, reportHeaders)

	// Left-align text columns, right-align counts.
	sep := []string{":--", "--:", "--:", "--:", "--:", "--:", ":--"}
	writeMarkdownRow(&b, sep)

	for _, sc := range systems {
		cells := reportRow(sc)
		for i, c := range cells {
			cells[i] = markdownEscaper.Replace(c)
		}
		writeMarkdownRow(&b, cells)
	}

	b.WriteString("\n**")
	b.WriteString(SummaryLine(overall))
	b.WriteString("**\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
