package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and string
// durations.
type StructuredJSONConfig struct {
	App struct {
		ProjectPath string `json:"project_path"`
		APIKey      string `json:"api_key"`
		LogFile     string `json:"log_file"`
		Plain       bool   `json:"plain"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL        string    `json:"base_url"`
		RequestTimeout *Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Channel struct {
		URL              string   `json:"url"`
		HandshakeTimeout Duration `json:"handshake_timeout"`
		DialAttempts     int      `json:"dial_attempts"`
		DialBackoff      Duration `json:"dial_backoff"`
		MaxFrameSize     int64    `json:"max_frame_size"`
	} `json:"channel,omitempty"`

	Analysis struct {
		MaxDepth      int      `json:"max_depth"`
		ExcludedPaths []string `json:"excluded_paths"`
	} `json:"analysis,omitempty"`

	Workers struct {
		MaxConcurrentLaunches int `json:"max_concurrent_launches"`
	} `json:"workers,omitempty"`

	Telemetry struct {
		Endpoint    string `json:"endpoint"`
		ServiceName string `json:"service_name"`
		Insecure    bool   `json:"insecure"`
	} `json:"telemetry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ProjectPath: jsonCfg.App.ProjectPath,
			APIKey:      jsonCfg.App.APIKey,
			LogFile:     jsonCfg.App.LogFile,
			Plain:       jsonCfg.App.Plain,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: jsonRequestTimeout(jsonCfg.Adapter.RequestTimeout),
		},
		Channel: Channel{
			URL:              jsonCfg.Channel.URL,
			HandshakeTimeout: time.Duration(jsonCfg.Channel.HandshakeTimeout),
			DialAttempts:     jsonCfg.Channel.DialAttempts,
			DialBackoff:      time.Duration(jsonCfg.Channel.DialBackoff),
			MaxFrameSize:     jsonCfg.Channel.MaxFrameSize,
		},
		Analysis: Analysis{
			MaxDepth:      jsonCfg.Analysis.MaxDepth,
			ExcludedPaths: jsonCfg.Analysis.ExcludedPaths,
		},
		Workers: Workers{
			MaxConcurrentLaunches: jsonCfg.Workers.MaxConcurrentLaunches,
		},
		Telemetry: Telemetry{
			Endpoint:    jsonCfg.Telemetry.Endpoint,
			ServiceName: jsonCfg.Telemetry.ServiceName,
			Insecure:    jsonCfg.Telemetry.Insecure,
		},
	}

	return cfg, nil
}

func jsonRequestTimeout(d *Duration) time.Duration {
	if d == nil {
		return 0
	}
	return explicitRequestTimeout(time.Duration(*d))
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
