// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AnalysisRequest is the body of POST /analysis/start.
//
// MaxDepth and ExcludedPaths are only serialized when configured, so the
// default body carries nothing but the project path.
type AnalysisRequest struct {
	// ProjectPath is the absolute filesystem path of the project to analyse.
	ProjectPath string `json:"projectPath"`

	// MaxDepth limits how many commits of history the backend walks.
	MaxDepth int `json:"maxDepth,omitempty"`

	// ExcludedPaths lists path prefixes the backend should skip.
	ExcludedPaths []string `json:"excludedPaths,omitempty"`
}

// AnalysisResponse is the body returned by a successful start request.
type AnalysisResponse struct {
	// ID is the opaque, server-assigned session identifier.
	ID string `json:"id"`

	// Status and StartTime are informational and may be absent.
	Status    string `json:"status,omitempty"`
	StartTime string `json:"startTime,omitempty"`
}

// Credential carries the optional API key used against multi-user backends.
// The zero value means "no credential" and is the normal local-first case.
type Credential struct {
	APIKey string
}

// NewCredential returns a Credential holding key with surrounding whitespace
// removed.
func NewCredential(key string) Credential {
	return Credential{APIKey: strings.TrimSpace(key)}
}

// IsSet reports whether the credential holds a non-blank key.
func (c Credential) IsSet() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// Key returns the trimmed API key, or an empty string when unset.
func (c Credential) Key() string {
	return strings.TrimSpace(c.APIKey)
}

// String never reveals the key.
func (c Credential) String() string {
	if c.IsSet() {
		return "Credential(****)"
	}
	return "Credential(none)"
}
