package tui

import (
	"testing"

	"github.com/MKhiriev/code-historian-client/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m analysisModel, msg tea.Msg) (analysisModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(analysisModel)
	require.True(t, ok)
	return result, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newTestModel() analysisModel {
	return newAnalysisModel("/home/u/proj", models.NewAppBuildInfo("1.2.3", "", ""))
}

func TestAnalysisModel_StartingView(t *testing.T) {
	m := newTestModel()

	view := m.View()
	assert.Contains(t, view, "/home/u/proj")
	assert.Contains(t, view, "Starting analysis")
	assert.Contains(t, view, "1.2.3")
	assert.NotContains(t, view, "copy session id")
}

func TestAnalysisModel_ProgressFlow(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, startedMsg{sessionID: "abc"})
	assert.Nil(t, cmd)
	assert.Equal(t, phaseRunning, m.phase)

	m, _ = update(t, m, progressMsg{percent: 25})
	m, _ = update(t, m, metricsMsg{document: "{\n  \"files\": 3\n}"})

	assert.InDelta(t, 25.0, m.percent, 1e-9)
	assert.Equal(t, `{"files":3}`, m.metrics)

	view := m.View()
	assert.Contains(t, view, "Session: abc")
	assert.Contains(t, view, `Metrics: {"files":3}`)
	assert.Contains(t, view, "copy session id")

	m, cmd = update(t, m, completedMsg{})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, phaseCompleted, m.phase)
	assert.Contains(t, m.View(), "Analysis completed")
	assert.False(t, m.quitByUser)
}

func TestAnalysisModel_ProgressBeforeStartedSwitchesPhase(t *testing.T) {
	m, _ := update(t, newTestModel(), progressMsg{percent: 10})
	assert.Equal(t, phaseRunning, m.phase)
}

func TestAnalysisModel_Failure(t *testing.T) {
	m, cmd := update(t, newTestModel(), failedMsg{message: "Failed to start analysis: the server is unreachable"})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, phaseFailed, m.phase)
	assert.Contains(t, m.View(), "the server is unreachable")
}

func TestAnalysisModel_QuitWhileRunning(t *testing.T) {
	m, _ := update(t, newTestModel(), startedMsg{sessionID: "abc"})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, isQuit(cmd))
	assert.True(t, m.quitByUser)
}

func TestAnalysisModel_QuitAfterCompletion(t *testing.T) {
	m, _ := update(t, newTestModel(), completedMsg{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.False(t, m.quitByUser)
}

func TestAnalysisModel_CopyWithoutSessionIsNoop(t *testing.T) {
	_, cmd := update(t, newTestModel(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Nil(t, cmd)
}

func TestAnalysisModel_CopiedStatus(t *testing.T) {
	m, _ := update(t, newTestModel(), copiedMsg{})
	assert.Contains(t, m.View(), "session id copied")
}

func TestAnalysisModel_WindowResize(t *testing.T) {
	m, _ := update(t, newTestModel(), tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.Equal(t, 42, m.bar.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 4, Height: 20})
	assert.Equal(t, 10, m.bar.Width)
}

func TestAnalysisModel_SpinnerTick(t *testing.T) {
	m := newTestModel()
	_, cmd := update(t, m, spinner.TickMsg{ID: m.spinner.ID()})
	assert.NotNil(t, cmd)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestCompactJSON_NotJSON(t *testing.T) {
	assert.Equal(t, "plain text", compactJSON("  plain text \n"))
}
