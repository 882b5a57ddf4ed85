package service

import (
	"github.com/MKhiriev/code-historian-client/internal/adapter"
	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/internal/sink"
	"github.com/MKhiriev/code-historian-client/internal/workers"
)

// ClientServices groups the services the client app exposes to its host.
type ClientServices struct {
	AnalysisService AnalysisService
	HistoryService  HistoryService
}

// NewClientServices wires the client services. A nil reporter falls back to
// [NewLoggingReporter].
func NewClientServices(
	cfg *config.ClientConfig,
	serverAdapter adapter.ServerAdapter,
	dialer adapter.ChannelDialer,
	updateSink *sink.Sink,
	executor workers.Executor,
	reporter StatusReporter,
	logger *logger.Logger,
) *ClientServices {
	if reporter == nil {
		reporter = NewLoggingReporter(logger)
	}

	return &ClientServices{
		AnalysisService: NewAnalysisService(serverAdapter, dialer, updateSink, executor, reporter, cfg.Analysis, logger),
		HistoryService:  NewHistoryService(serverAdapter, logger),
	}
}
