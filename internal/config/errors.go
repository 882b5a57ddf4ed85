package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, an unparsable base URL or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidChannelConfigs indicates invalid live update channel
	// settings (for example, a non-websocket URL or zero dial attempts).
	ErrInvalidChannelConfigs = errors.New("invalid channel configuration")
	// ErrInvalidAnalysisConfigs indicates invalid start request parameters
	// (for example, a negative max depth).
	ErrInvalidAnalysisConfigs = errors.New("invalid analysis configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive launch limit).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
