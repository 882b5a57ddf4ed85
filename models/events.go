// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// EventKind identifies the type of message pushed over a live update channel.
type EventKind string

const (
	EventProgress  EventKind = "progress"
	EventMetrics   EventKind = "metrics"
	EventCompleted EventKind = "completed"
	EventFailed    EventKind = "error"
)

// ProgressEvent reports how far the analysis has advanced, in percent.
type ProgressEvent struct {
	Percent float64 `json:"progress"`
}

// MetricsEvent carries an arbitrary metrics document produced by the engine.
type MetricsEvent struct {
	Payload json.RawMessage `json:"metrics"`
}

// Event is a single message received on a live update channel. Exactly one of
// Progress or Metrics is set for the non-terminal kinds; Message holds the
// engine's failure reason for EventFailed.
type Event struct {
	Kind      EventKind
	SessionID string

	Progress *ProgressEvent
	Metrics  *MetricsEvent
	Message  string
}

// IsTerminal reports whether the event ends the session's event sequence.
func (e Event) IsTerminal() bool {
	return e.Kind == EventCompleted || e.Kind == EventFailed
}
