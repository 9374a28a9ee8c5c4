package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/moncov/internal/domain"
	"github.com/vburojevic/moncov/internal/output"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	systems, overall := output.AggregateRecords([]domain.MonitorRecord{
		{System: "A", Monitor: "cpu", Required: true, Monitored: true},
		{System: "A", Monitor: "disk", Required: true},
		{System: "B", Monitor: "net", Monitored: true},
	})
	m, err := New("monitors.json", systems, overall)
	require.NoError(t, err)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_InitialState(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, output.FormatTable, m.Format())
	assert.Contains(t, m.Content(), "Overall: 2 systems")
	assert.Equal(t, "Initializing...", m.View())
	assert.Nil(t, m.Init())
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.True(t, m.ready)
	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 40-headerHeight-footerHeight, m.viewport.Height)

	view := m.View()
	assert.Contains(t, view, "moncov: monitors.json [table]")
	assert.Contains(t, view, "50.0%")
}

func TestModel_TabCyclesFormats(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	var seen []output.Format
	for range output.Formats() {
		updated, _ = m.Update(keyMsg("tab"))
		m = updated.(Model)
		seen = append(seen, m.Format())
	}
	assert.Equal(t, []output.Format{output.FormatMarkdown, output.FormatCSV, output.FormatJSON, output.FormatTable}, seen)

	updated, _ = m.Update(keyMsg("shift+tab"))
	m = updated.(Model)
	assert.Equal(t, output.FormatJSON, m.Format())
	assert.Contains(t, m.Content(), `"schemaVersion"`)
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel(t)
			_, cmd := m.Update(keyMsg(key))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}
