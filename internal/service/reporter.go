package service

import (
	"github.com/MKhiriev/code-historian-client/internal/logger"
)

type loggingReporter struct {
	logger *logger.Logger
}

// NewLoggingReporter returns a [StatusReporter] that only writes log entries.
// It is the default when the host supplies no reporter of its own.
func NewLoggingReporter(logger *logger.Logger) StatusReporter {
	return &loggingReporter{logger: logger}
}

func (r *loggingReporter) ReportStarted(launchID, sessionID string) {
	r.logger.Info().Str("launch_id", launchID).Str("session_id", sessionID).Msg("analysis started")
}

func (r *loggingReporter) ReportCompleted(launchID, sessionID string) {
	r.logger.Info().Str("launch_id", launchID).Str("session_id", sessionID).Msg("analysis completed")
}

func (r *loggingReporter) ReportFailure(launchID, message string, err error) {
	r.logger.Error().Err(err).Str("launch_id", launchID).Msg(message)
}
