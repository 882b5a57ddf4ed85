// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] satisfies all client
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	return newClientConfig(cfg).validate()
}

func (cfg *ClientConfig) validate() error {
	if err := validateURL(cfg.Adapter.BaseURL, "http", "https"); err != nil {
		return fmt.Errorf("%w: base url: %w", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Channel.URL != "" {
		if err := validateURL(cfg.Channel.URL, "ws", "wss"); err != nil {
			return fmt.Errorf("%w: url: %w", ErrInvalidChannelConfigs, err)
		}
	}
	if cfg.Channel.DialAttempts < 1 || cfg.Channel.DialBackoff < 0 || cfg.Channel.HandshakeTimeout < 0 || cfg.Channel.MaxFrameSize < 0 {
		return ErrInvalidChannelConfigs
	}

	if cfg.Analysis.MaxDepth < 0 {
		return ErrInvalidAnalysisConfigs
	}

	if cfg.Workers.MaxConcurrentLaunches < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateURL(raw string, schemes ...string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}
	// scheme-less addresses are completed by the adapter
	if !strings.Contains(raw, "://") {
		raw = schemes[0] + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("address must include host")
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("unsupported scheme %q", u.Scheme)
}
