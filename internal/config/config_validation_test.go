// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	return newClientConfig(cfg)
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"defaults", func(c *ClientConfig) {}, nil},
		{"scheme-less base url", func(c *ClientConfig) { c.Adapter.BaseURL = "localhost:3000" }, nil},
		{"ftp base url", func(c *ClientConfig) { c.Adapter.BaseURL = "ftp://host/api" }, ErrInvalidAdapterConfigs},
		{"no host", func(c *ClientConfig) { c.Adapter.BaseURL = "http://" }, ErrInvalidAdapterConfigs},
		{"negative timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = -1 }, ErrInvalidAdapterConfigs},
		{"http channel url", func(c *ClientConfig) { c.Channel.URL = "http://host" }, ErrInvalidChannelConfigs},
		{"wss channel url", func(c *ClientConfig) { c.Channel.URL = "wss://host" }, nil},
		{"zero dial attempts", func(c *ClientConfig) { c.Channel.DialAttempts = 0 }, ErrInvalidChannelConfigs},
		{"negative frame size", func(c *ClientConfig) { c.Channel.MaxFrameSize = -1 }, ErrInvalidChannelConfigs},
		{"negative depth", func(c *ClientConfig) { c.Analysis.MaxDepth = -5 }, ErrInvalidAnalysisConfigs},
		{"zero launches", func(c *ClientConfig) { c.Workers.MaxConcurrentLaunches = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
