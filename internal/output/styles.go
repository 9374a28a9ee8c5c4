package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vburojevic/moncov/internal/domain"
)

// Coverage thresholds for status styling
const (
	HealthyCoverage  = 0.9
	DegradedCoverage = 0.6
)

// Styles holds all lipgloss styles for terminal output
var Styles = struct {
	// Status styles
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Muted   lipgloss.Style

	// TUI styles
	Title     lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}{
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),            // Gray

	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
	StatusBar: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")).Padding(0, 1),
	Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
}

// CoverageStatus classifies an overall rate
func CoverageStatus(rate domain.Rate) string {
	v, ok := rate.Value()
	switch {
	case !ok:
		return "NO REQUIRED MONITORS"
	case v >= HealthyCoverage:
		return "OK"
	case v >= DegradedCoverage:
		return "GAPS DETECTED"
	default:
		return "CRITICAL GAPS"
	}
}

// StatusStyle returns a style based on the coverage rate
func StatusStyle(rate domain.Rate) lipgloss.Style {
	v, ok := rate.Value()
	switch {
	case !ok:
		return Styles.Muted
	case v >= HealthyCoverage:
		return Styles.Success
	case v >= DegradedCoverage:
		return Styles.Warning
	default:
		return Styles.Danger
	}
}

// StatusText returns the styled status line for a report
func StatusText(overall domain.OverallSummary) string {
	return Styles.Label.Render("STATUS: ") + StatusStyle(overall.CoverageRate).Render(CoverageStatus(overall.CoverageRate))
}
