// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults describe a local, single-user backend.
const (
	DefaultBaseURL               = "http://localhost:3000/api"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultHandshakeTimeout      = 10 * time.Second
	DefaultDialAttempts          = 3
	DefaultDialBackoff           = 500 * time.Millisecond
	DefaultMaxFrameSize          = 1 << 20
	DefaultMaxConcurrentLaunches = 4
	DefaultServiceName           = "historian-client"
)

// requestTimeoutEnv is the unprefixed variable name of Adapter.RequestTimeout.
const requestTimeoutEnv = "ADAPTER_REQUEST_TIMEOUT"

// explicitRequestTimeout converts a timeout a source set on purpose, so that
// zero is kept apart from "not configured".
func explicitRequestTimeout(d time.Duration) time.Duration {
	if d == 0 {
		return NoRequestTimeout
	}
	return d
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Channel.HandshakeTimeout == 0 {
		cfg.Channel.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if cfg.Channel.DialAttempts == 0 {
		cfg.Channel.DialAttempts = DefaultDialAttempts
	}
	if cfg.Channel.DialBackoff == 0 {
		cfg.Channel.DialBackoff = DefaultDialBackoff
	}
	if cfg.Channel.MaxFrameSize == 0 {
		cfg.Channel.MaxFrameSize = DefaultMaxFrameSize
	}
	if cfg.Workers.MaxConcurrentLaunches == 0 {
		cfg.Workers.MaxConcurrentLaunches = DefaultMaxConcurrentLaunches
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = DefaultServiceName
	}
}
