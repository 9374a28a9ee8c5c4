package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vburojevic/moncov/internal/domain"
	"github.com/vburojevic/moncov/internal/output"
)

const (
	headerHeight = 2
	footerHeight = 1
)

// Model is a read-only pager over a rendered coverage report. Tab cycles
// through the report formats, all rendered once from the same values.
type Model struct {
	title    string
	overall  domain.OverallSummary
	formats  []output.Format
	pages    map[output.Format]string
	current  int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New renders every format up front and returns a pager starting on the table.
func New(title string, systems []domain.SystemCoverage, overall domain.OverallSummary) (Model, error) {
	m := Model{
		title:   title,
		overall: overall,
		formats: output.Formats(),
		pages:   make(map[output.Format]string),
	}
	for _, f := range m.formats {
		page, err := output.RenderString(systems, overall, f)
		if err != nil {
			return Model{}, fmt.Errorf("render %s: %w", f, err)
		}
		m.pages[f] = page
	}
	return m, nil
}

// Format returns the format currently shown.
func (m Model) Format() output.Format { return m.formats[m.current] }

// Content returns the rendered text of the current page.
func (m Model) Content() string { return m.pages[m.Format()] }

// Init initializes the model
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.current = (m.current + 1) % len(m.formats)
			m.syncContent()
			return m, nil
		case "shift+tab":
			m.current = (m.current + len(m.formats) - 1) % len(m.formats)
			m.syncContent()
			return m, nil
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(m.height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.syncContent()
		return m, nil
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.Content())
	m.viewport.GotoTop()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.renderHeader(), m.viewport.View(), m.renderFooter())
}

func (m Model) renderHeader() string {
	title := output.Styles.Title.Render(fmt.Sprintf("moncov: %s [%s]", m.title, m.Format()))
	info := output.Styles.Label.Render(fmt.Sprintf("Systems: %d | Required: %d/%d | Coverage: ",
		m.overall.Systems, m.overall.RequiredCovered, m.overall.RequiredTotal))
	rate := output.StatusStyle(m.overall.CoverageRate).Render(m.overall.CoverageRate.Percent())
	return lipgloss.JoinVertical(lipgloss.Left, title, info+rate)
}

func (m Model) renderFooter() string {
	help := "q quit • tab next format • ↑/↓ scroll • g/G top/bottom"
	pos := fmt.Sprintf(" %3.0f%%", m.viewport.ScrollPercent()*100)
	return output.Styles.Help.Render(help) + output.Styles.StatusBar.Render(pos)
}
