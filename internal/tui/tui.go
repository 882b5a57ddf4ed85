// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders a running analysis in the terminal.
//
// [TUI] is both the display fed by the update sink and the status reporter
// of the launch, so it can be handed to the services as-is. All callbacks
// are forwarded into the bubbletea event loop and are safe to call from any
// goroutine.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the user left before the analysis
// finished.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	program *tea.Program
	logger  *logger.Logger
}

// New creates the terminal view of an analysis of projectPath. Extra
// program options are passed to bubbletea (tests use them to swap the
// terminal for buffers).
func New(projectPath string, info models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	model := newAnalysisModel(projectPath, info)
	return &TUI{
		program: tea.NewProgram(model, opts...),
		logger:  logger,
	}
}

// UpdateProgress implements sink.Display.
func (t *TUI) UpdateProgress(percent float64) {
	t.program.Send(progressMsg{percent: percent})
}

// UpdateMetrics implements sink.Display.
func (t *TUI) UpdateMetrics(document string) {
	t.program.Send(metricsMsg{document: document})
}

// ReportStarted implements service.StatusReporter.
func (t *TUI) ReportStarted(_, sessionID string) {
	t.program.Send(startedMsg{sessionID: sessionID})
}

// ReportCompleted implements service.StatusReporter.
func (t *TUI) ReportCompleted(_, _ string) {
	t.program.Send(completedMsg{})
}

// ReportFailure implements service.StatusReporter.
func (t *TUI) ReportFailure(launchID, message string, err error) {
	t.logger.Error().Err(err).Str("launch_id", launchID).Msg(message)
	t.program.Send(failedMsg{message: message})
}

// Run shows the view until the analysis ends, the user quits or ctx is
// cancelled. It returns [ErrUserQuit] when the user quit first.
func (t *TUI) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, t.program.Quit)
	defer stop()

	finalModel, err := t.program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(analysisModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
