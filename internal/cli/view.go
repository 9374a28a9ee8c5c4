package cli

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vburojevic/moncov/internal/tui"
)

// ViewCmd opens the coverage report in an interactive pager
type ViewCmd struct {
	Input string `short:"i" default:"${config_input}" placeholder:"PATH" help:"Monitor records file (.json, .csv, .yaml)"`

	FilterFlags `embed:""`
}

// Run executes the view command
func (c *ViewCmd) Run(globals *Globals) error {
	flt, err := c.buildFilter()
	if err != nil {
		return outputErrorCommon(globals, err)
	}

	systems, overall, err := buildReport(globals, c.Input, flt)
	if err != nil {
		return outputErrorCommon(globals, err)
	}

	model, err := tui.New(filepath.Base(c.Input), systems, overall)
	if err != nil {
		return outputErrorCommon(globals, err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return outputErrorCommon(globals, err)
	}
	return nil
}
