// Package service implements the client-side business logic of the
// historian client: launching analysis sessions, bridging their live updates
// to the display layer, and querying history and metrics.
package service

import (
	"context"

	"github.com/MKhiriev/code-historian-client/models"
)

// AnalysisService starts and tracks analysis sessions.
type AnalysisService interface {
	// StartAnalysis begins an analysis of projectPath and returns at once.
	// The request, the channel and every update run on a background worker;
	// the outcome is delivered through the [StatusReporter] and the returned
	// [Launch]. Each call issues a new request and yields a new session.
	StartAnalysis(ctx context.Context, projectPath string, cred models.Credential) *Launch

	// Cancel stops the launch that owns sessionID. Updates for the session
	// stop reaching the display immediately. Returns false if no active
	// launch owns the session.
	Cancel(sessionID string) bool

	// Shutdown cancels every launch and waits for the workers to exit or for
	// ctx to expire.
	Shutdown(ctx context.Context) error
}

// HistoryService queries results of past analyses.
type HistoryService interface {
	// FileHistory returns the change history of filePath.
	FileHistory(ctx context.Context, filePath string, cred models.Credential) (models.FileHistory, error)

	// ProjectMetrics returns the repository-wide overview.
	ProjectMetrics(ctx context.Context, cred models.Credential) (models.ProjectMetrics, error)

	// CustomMetrics returns the values of the custom metric metricKey.
	CustomMetrics(ctx context.Context, metricKey string, cred models.Credential) (map[string]float64, error)

	// MetricsSummary returns the flat metric list.
	MetricsSummary(ctx context.Context, cred models.Credential) (models.MetricsSummary, error)
}

// StatusReporter is the host's status surface. Every launch ends in exactly
// one ReportCompleted or ReportFailure, unless it is cancelled, in which
// case neither is called.
type StatusReporter interface {
	// ReportStarted is called once the live update channel is open.
	ReportStarted(launchID, sessionID string)

	// ReportCompleted is called when the engine finishes the session.
	ReportCompleted(launchID, sessionID string)

	// ReportFailure is called with a short human-readable message and the
	// underlying error.
	ReportFailure(launchID, message string, err error)
}
