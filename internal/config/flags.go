package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// PathList collects repeated or comma-separated path flags.
// It implements the flag.Value interface.
type PathList []string

// String returns the paths joined with commas.
func (p *PathList) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(*p, ",")
}

// Set appends every non-blank comma-separated element of s.
func (p *PathList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		*p = append(*p, part)
	}
	return nil
}

// ParseFlags parses the client command line.
//
// Flags:
//
//	-u/-base-url          backend API root, e.g. http://localhost:3000/api
//	-k/-api-key           optional API key for multi-user backends
//	-p/-project           absolute path of the project to analyse
//	-request-timeout      outbound request timeout (e.g. "30s")
//	-ws-url               websocket root override
//	-handshake-timeout    websocket handshake timeout
//	-dial-attempts        websocket connection attempts
//	-dial-backoff         base delay between websocket connection attempts
//	-max-frame-size       largest accepted websocket frame in bytes
//	-max-depth            history depth forwarded to the backend
//	-exclude              excluded path, repeatable or comma-separated
//	-max-launches         concurrent launches talking to the backend
//	-log-file             JSON log destination
//	-plain                print progress lines instead of the terminal view
//	-history              print the change history of a file and exit
//	-project-metrics      print the repository overview and exit
//	-metric               print the values of a custom metric and exit
//	-summary              print the metrics summary and exit
//	-otel-endpoint        OTLP/HTTP collector host:port
//	-otel-insecure        disable TLS towards the collector
//	-c/-config            json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		baseURL          string
		apiKey           string
		projectPath      string
		requestTimeout   time.Duration
		wsURL            string
		handshakeTimeout time.Duration
		dialAttempts     int
		dialBackoff      time.Duration
		maxFrameSize     int64
		maxDepth         int
		excluded         PathList
		maxLaunches      int
		logFile          string
		plain            bool
		historyFile      string
		projectMetrics   bool
		metricKey        string
		metricsSummary   bool
		otelEndpoint     string
		otelInsecure     bool
		jsonConfigPath   string
	)

	fs := flag.NewFlagSet("historian", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "u", "", "Backend API root URL")
	fs.StringVar(&baseURL, "base-url", "", "Backend API root URL (alias)")
	fs.StringVar(&apiKey, "k", "", "API key")
	fs.StringVar(&apiKey, "api-key", "", "API key (alias)")
	fs.StringVar(&projectPath, "p", "", "Project path")
	fs.StringVar(&projectPath, "project", "", "Project path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&wsURL, "ws-url", "", "Websocket root URL")
	fs.DurationVar(&handshakeTimeout, "handshake-timeout", 0, "Websocket handshake timeout")
	fs.IntVar(&dialAttempts, "dial-attempts", 0, "Websocket connection attempts")
	fs.DurationVar(&dialBackoff, "dial-backoff", 0, "Base delay between websocket connection attempts")
	fs.Int64Var(&maxFrameSize, "max-frame-size", 0, "Largest accepted websocket frame in bytes")
	fs.IntVar(&maxDepth, "max-depth", 0, "History depth")
	fs.Var(&excluded, "exclude", "Excluded path (repeatable)")
	fs.IntVar(&maxLaunches, "max-launches", 0, "Concurrent launches")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&plain, "plain", false, "Print progress lines instead of the terminal view")
	fs.StringVar(&historyFile, "history", "", "Print the change history of a file and exit")
	fs.BoolVar(&projectMetrics, "project-metrics", false, "Print the repository overview and exit")
	fs.StringVar(&metricKey, "metric", "", "Print the values of a custom metric and exit")
	fs.BoolVar(&metricsSummary, "summary", false, "Print the metrics summary and exit")
	fs.StringVar(&otelEndpoint, "otel-endpoint", "", "OTLP/HTTP collector host:port")
	fs.BoolVar(&otelInsecure, "otel-insecure", false, "Disable TLS towards the collector")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "request-timeout" {
			requestTimeout = explicitRequestTimeout(requestTimeout)
		}
	})

	// a lone positional argument is accepted as the project path
	if projectPath == "" && fs.NArg() == 1 {
		projectPath = fs.Arg(0)
	}

	return &StructuredConfig{
		App: App{
			ProjectPath:    projectPath,
			APIKey:         apiKey,
			LogFile:        logFile,
			Plain:          plain,
			HistoryFile:    historyFile,
			ProjectMetrics: projectMetrics,
			MetricKey:      metricKey,
			MetricsSummary: metricsSummary,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Channel: Channel{
			URL:              wsURL,
			HandshakeTimeout: handshakeTimeout,
			DialAttempts:     dialAttempts,
			DialBackoff:      dialBackoff,
			MaxFrameSize:     maxFrameSize,
		},
		Analysis: Analysis{
			MaxDepth:      maxDepth,
			ExcludedPaths: excluded,
		},
		Workers: Workers{
			MaxConcurrentLaunches: maxLaunches,
		},
		Telemetry: Telemetry{
			Endpoint: otelEndpoint,
			Insecure: otelInsecure,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
