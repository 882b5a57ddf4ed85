package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/code-historian-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultBarWidth = 40
	maxMetricsWidth = 72
)

type phase int

const (
	phaseStarting phase = iota
	phaseRunning
	phaseCompleted
	phaseFailed
)

type analysisModel struct {
	projectPath string
	buildInfo   models.AppBuildInfo

	spinner spinner.Model
	bar     progress.Model

	phase      phase
	sessionID  string
	percent    float64
	metrics    string
	failure    string
	status     string
	quitByUser bool
}

func newAnalysisModel(projectPath string, info models.AppBuildInfo) analysisModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = defaultBarWidth

	return analysisModel{
		projectPath: projectPath,
		buildInfo:   info,
		spinner:     s,
		bar:         bar,
	}
}

func (m analysisModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m analysisModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = m.phase < phaseCompleted
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			if m.sessionID == "" {
				return m, nil
			}
			return m, copySessionID(m.sessionID)
		}

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-8, 10), 80)

	case startedMsg:
		m.phase = phaseRunning
		m.sessionID = msg.sessionID

	case progressMsg:
		if m.phase == phaseStarting {
			m.phase = phaseRunning
		}
		m.percent = msg.percent

	case metricsMsg:
		m.metrics = compactJSON(msg.document)

	case completedMsg:
		m.phase = phaseCompleted
		m.percent = 100
		return m, tea.Quit

	case failedMsg:
		m.phase = phaseFailed
		m.failure = msg.message
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "session id copied"
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m analysisModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", m.projectPath)
	if m.sessionID != "" {
		fmt.Fprintf(&b, "Session: %s\n", m.sessionID)
	}
	b.WriteString("\n")

	switch m.phase {
	case phaseStarting:
		b.WriteString(m.spinner.View() + " Starting analysis...")
	case phaseRunning:
		b.WriteString(m.bar.ViewAs(m.percent / 100))
		fmt.Fprintf(&b, "\n%s Analysing history", m.spinner.View())
	case phaseCompleted:
		b.WriteString(m.bar.ViewAs(1))
		b.WriteString("\n" + successStyle.Render("Analysis completed"))
	case phaseFailed:
		b.WriteString(errorStyle.Render(m.failure))
	}

	if m.metrics != "" {
		b.WriteString("\n\nMetrics: " + fitText(m.metrics, maxMetricsWidth))
	}
	if m.status != "" {
		b.WriteString("\n\n" + helpStyle.Render(m.status))
	}

	hotKeys := "q: quit"
	if m.sessionID != "" {
		hotKeys = "c: copy session id  " + hotKeys
	}

	title := fmt.Sprintf("CODE HISTORIAN  %s", m.buildInfo.BuildVersion())
	return renderPage(title, b.String(), hotKeys)
}

func copySessionID(sessionID string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(sessionID); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
