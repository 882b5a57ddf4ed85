// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name read by the
// client (e.g. HISTORIAN_ADAPTER_BASE_URL).
const EnvPrefix = "HISTORIAN_"

// NoRequestTimeout marks a request timeout explicitly set to zero by some
// source. An unset timeout stays 0 until defaults apply; NoRequestTimeout
// survives merging and defaults and reaches the client as 0 (disabled).
const NoRequestTimeout time.Duration = -1

// StructuredConfig is the top-level configuration container for the
// historian client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the analysis target, the optional credential and log output.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend HTTP API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Channel holds the live update channel settings.
	Channel Channel `envPrefix:"CHANNEL_"`

	// Analysis holds optional parameters forwarded in the start request.
	Analysis Analysis `envPrefix:"ANALYSIS_"`

	// Workers holds background launch execution settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Telemetry holds OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via HISTORIAN_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// ProjectPath is the absolute path of the project to analyse.
	// Env: HISTORIAN_APP_PROJECT_PATH
	ProjectPath string `env:"PROJECT_PATH"`

	// APIKey is sent as X-API-Key when non-blank. Leave empty for a local,
	// single-user backend.
	// Env: HISTORIAN_APP_API_KEY
	APIKey string `env:"API_KEY"`

	// LogFile is where the client writes its JSON log. Empty means stderr.
	// Env: HISTORIAN_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Plain prints progress as log-style lines instead of the interactive
	// terminal view.
	// Env: HISTORIAN_APP_PLAIN
	Plain bool `env:"PLAIN"`

	// HistoryFile, when set, prints the change history of that file
	// instead of launching an analysis.
	// Env: HISTORIAN_APP_HISTORY_FILE
	HistoryFile string `env:"HISTORY_FILE"`

	// ProjectMetrics prints the repository overview.
	// Env: HISTORIAN_APP_PROJECT_METRICS
	ProjectMetrics bool `env:"PROJECT_METRICS"`

	// MetricKey prints the values of one custom metric.
	// Env: HISTORIAN_APP_METRIC_KEY
	MetricKey string `env:"METRIC_KEY"`

	// MetricsSummary prints the flat metric list.
	// Env: HISTORIAN_APP_METRICS_SUMMARY
	MetricsSummary bool `env:"METRICS_SUMMARY"`
}

// Adapter holds the HTTP API settings of the analysis backend.
type Adapter struct {
	// BaseURL is the API root, e.g. "http://localhost:3000/api".
	// Env: HISTORIAN_ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "30s"). An
	// explicit "0s" disables the deadline.
	// Env: HISTORIAN_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Channel holds the live update channel settings.
type Channel struct {
	// URL overrides the websocket root. When empty it is derived from
	// Adapter.BaseURL.
	// Env: HISTORIAN_CHANNEL_URL
	URL string `env:"URL"`

	// HandshakeTimeout bounds the websocket opening handshake.
	// Env: HISTORIAN_CHANNEL_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`

	// DialAttempts is the total number of connection attempts before the
	// channel is reported as unreachable.
	// Env: HISTORIAN_CHANNEL_DIAL_ATTEMPTS
	DialAttempts int `env:"DIAL_ATTEMPTS"`

	// DialBackoff is the base delay of the exponential backoff between
	// connection attempts.
	// Env: HISTORIAN_CHANNEL_DIAL_BACKOFF
	DialBackoff time.Duration `env:"DIAL_BACKOFF"`

	// MaxFrameSize caps a single incoming frame in bytes. Larger frames
	// break the channel.
	// Env: HISTORIAN_CHANNEL_MAX_FRAME_SIZE
	MaxFrameSize int64 `env:"MAX_FRAME_SIZE"`
}

// Analysis holds optional parameters of the start request.
type Analysis struct {
	// MaxDepth limits how much history the backend walks. Zero omits it.
	// Env: HISTORIAN_ANALYSIS_MAX_DEPTH
	MaxDepth int `env:"MAX_DEPTH"`

	// ExcludedPaths is a comma-separated list in the environment.
	// Env: HISTORIAN_ANALYSIS_EXCLUDED_PATHS
	ExcludedPaths []string `env:"EXCLUDED_PATHS" envSeparator:","`
}

// Workers holds settings of the background launch pool.
type Workers struct {
	// MaxConcurrentLaunches caps how many launches talk to the backend at
	// the same time. Further launches wait on the worker, never on the caller.
	// Env: HISTORIAN_WORKERS_MAX_CONCURRENT_LAUNCHES
	MaxConcurrentLaunches int `env:"MAX_CONCURRENT_LAUNCHES"`
}

// Telemetry holds OpenTelemetry settings. Tracing is enabled only when
// Endpoint is set.
type Telemetry struct {
	// Endpoint is the OTLP/HTTP collector host:port.
	// Env: HISTORIAN_TELEMETRY_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// ServiceName is reported as the service.name resource attribute.
	// Env: HISTORIAN_TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// Insecure disables TLS towards the collector.
	// Env: HISTORIAN_TELEMETRY_INSECURE
	Insecure bool `env:"INSECURE"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field still unset after merging.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
