package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/code-historian-client/internal/adapter"
	"github.com/MKhiriev/code-historian-client/internal/workers"
)

var (
	// ErrConfiguration is returned when a launch cannot be built from its
	// inputs, e.g. a blank or relative project path.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrAnalysisFailed is returned when the engine reports a failure over
	// the live update channel.
	ErrAnalysisFailed = errors.New("analysis failed")
	// ErrLaunchCancelled is the error of a launch stopped by Cancel or
	// Shutdown.
	ErrLaunchCancelled = errors.New("launch cancelled")
)

// describeFailure turns a launch error into the message shown to the user.
func describeFailure(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return fmt.Sprintf("Cannot start analysis: %s", extractDetail(err, ErrConfiguration))
	case errors.Is(err, ErrAnalysisFailed):
		return fmt.Sprintf("Analysis failed: %s", extractDetail(err, ErrAnalysisFailed))
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return "Failed to start analysis: the server rejected the API key"
	case errors.Is(err, adapter.ErrNotFound):
		return "Failed to start analysis: the analysis endpoint was not found, check the server URL"
	case errors.Is(err, adapter.ErrChannel):
		return "Lost connection to the analysis progress channel"
	case errors.Is(err, adapter.ErrProtocol):
		return "Failed to start analysis: the server returned an unexpected response"
	case errors.Is(err, adapter.ErrUnexpectedStatus),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return "Failed to start analysis: the server returned an error"
	case errors.Is(err, adapter.ErrTransport):
		return "Failed to start analysis: the server is unreachable"
	case errors.Is(err, workers.ErrPoolStopped):
		return "Failed to start analysis: the client is shutting down"
	case errors.Is(err, workers.ErrJobPanicked):
		return "Failed to start analysis: internal error"
	default:
		return fmt.Sprintf("Failed to start analysis: %s", err)
	}
}

// extractDetail returns the text following sentinel in a message of the form
// "...<sentinel>: <detail>".
func extractDetail(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if idx := strings.Index(msg, prefix); idx != -1 {
		return msg[idx+len(prefix):]
	}
	return msg
}
