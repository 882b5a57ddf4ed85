package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// ProjectPath is the project analysed by the CLI. May be empty when the
	// host supplies the path per launch.
	ProjectPath string
	// APIKey is the optional backend credential.
	APIKey string
	// LogFile is the JSON log destination.
	LogFile string
	// Plain selects line output instead of the terminal view.
	Plain bool
	// Query lists the history and metrics reports to print instead of
	// running an analysis.
	Query ClientQuery
}

// ClientQuery selects one-shot history and metrics reports.
type ClientQuery struct {
	HistoryFile    string
	ProjectMetrics bool
	MetricKey      string
	MetricsSummary bool
}

// IsSet reports whether any report was requested.
func (q ClientQuery) IsSet() bool {
	return strings.TrimSpace(q.HistoryFile) != "" || q.ProjectMetrics ||
		strings.TrimSpace(q.MetricKey) != "" || q.MetricsSummary
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the backend API root.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	// Zero disables it.
	RequestTimeout time.Duration
}

// ClientChannel holds live update channel settings.
type ClientChannel struct {
	// URL is the websocket root; empty means derive from the adapter base URL.
	URL string
	// HandshakeTimeout bounds the opening handshake.
	HandshakeTimeout time.Duration
	// DialAttempts is the total number of connection attempts.
	DialAttempts int
	// DialBackoff is the base delay between attempts.
	DialBackoff time.Duration
	// MaxFrameSize caps one incoming frame in bytes.
	MaxFrameSize int64
}

// ClientAnalysis holds optional start request parameters.
type ClientAnalysis struct {
	MaxDepth      int
	ExcludedPaths []string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// MaxConcurrentLaunches caps concurrently executing launches.
	MaxConcurrentLaunches int
}

// ClientTelemetry contains tracing exporter settings.
type ClientTelemetry struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Channel   ClientChannel
	Analysis  ClientAnalysis
	Workers   ClientWorkers
	Telemetry ClientTelemetry
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ProjectPath: cfg.App.ProjectPath,
			APIKey:      cfg.App.APIKey,
			LogFile:     cfg.App.LogFile,
			Plain:       cfg.App.Plain,
			Query: ClientQuery{
				HistoryFile:    cfg.App.HistoryFile,
				ProjectMetrics: cfg.App.ProjectMetrics,
				MetricKey:      cfg.App.MetricKey,
				MetricsSummary: cfg.App.MetricsSummary,
			},
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: clientRequestTimeout(cfg.Adapter.RequestTimeout),
		},
		Channel: ClientChannel{
			URL:              cfg.Channel.URL,
			HandshakeTimeout: cfg.Channel.HandshakeTimeout,
			DialAttempts:     cfg.Channel.DialAttempts,
			DialBackoff:      cfg.Channel.DialBackoff,
			MaxFrameSize:     cfg.Channel.MaxFrameSize,
		},
		Analysis: ClientAnalysis{
			MaxDepth:      cfg.Analysis.MaxDepth,
			ExcludedPaths: cfg.Analysis.ExcludedPaths,
		},
		Workers: ClientWorkers{
			MaxConcurrentLaunches: cfg.Workers.MaxConcurrentLaunches,
		},
		Telemetry: ClientTelemetry{
			Endpoint:    cfg.Telemetry.Endpoint,
			ServiceName: cfg.Telemetry.ServiceName,
			Insecure:    cfg.Telemetry.Insecure,
		},
	}
}

func clientRequestTimeout(d time.Duration) time.Duration {
	if d == NoRequestTimeout {
		return 0
	}
	return d
}
