// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the code-historian analysis backend.
//
// [ServerAdapter] is the HTTP side: a generic authenticated request primitive
// ([ServerAdapter.Send] and its non-blocking twin [ServerAdapter.SendAsync])
// plus typed calls for the backend endpoints. [ChannelDialer] is the push
// side: it opens a websocket keyed by session id and exposes the received
// messages as a [Subscription].
//
// Errors wrap one of [ErrTransport], [ErrProtocol] or [ErrChannel] so callers
// can use [errors.Is] regardless of the concrete failure.
package adapter

import (
	"context"

	"github.com/MKhiriev/code-historian-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the analysis backend HTTP API.
// Implementations are responsible for serialisation, attaching the optional
// credential and mapping transport failures to the sentinels of this package.
type ServerAdapter interface {
	// Send performs one request and blocks until it completes. No retries
	// are made.
	Send(ctx context.Context, req Request) (Response, error)

	// SendAsync performs one request on a separate goroutine and returns a
	// future that yields exactly one [Outcome]. The caller is never blocked.
	SendAsync(ctx context.Context, req Request) <-chan Outcome[Response]

	// StartAnalysis posts req to /analysis/start. Only HTTP 200 with a
	// non-empty session id counts as success.
	StartAnalysis(ctx context.Context, req models.AnalysisRequest, cred models.Credential) (models.AnalysisResponse, error)

	// StartAnalysisAsync is the non-blocking form of StartAnalysis.
	StartAnalysisAsync(ctx context.Context, req models.AnalysisRequest, cred models.Credential) <-chan Outcome[models.AnalysisResponse]

	// FileHistory fetches the change history of one file.
	FileHistory(ctx context.Context, filePath string, cred models.Credential) (models.FileHistory, error)

	// ProjectMetrics fetches the repository-wide overview.
	ProjectMetrics(ctx context.Context, cred models.Credential) (models.ProjectMetrics, error)

	// CustomMetrics fetches the values of a named custom metric.
	CustomMetrics(ctx context.Context, metricKey string, cred models.Credential) (map[string]float64, error)

	// MetricsSummary fetches the flat metric list shown in the IDE tree.
	MetricsSummary(ctx context.Context, cred models.Credential) (models.MetricsSummary, error)
}

// ChannelDialer opens live update channels.
type ChannelDialer interface {
	// Open connects to the channel of sessionID. Connection attempts are
	// retried with backoff; once connected the subscription is never
	// reconnected.
	Open(ctx context.Context, sessionID string, cred models.Credential) (Subscription, error)
}

// Subscription is one open live update channel. Each subscription belongs to
// exactly one session and one consumer.
type Subscription interface {
	// SessionID returns the session the channel is scoped to.
	SessionID() string

	// Events yields messages in receive order. It is closed after a
	// terminal message, after Close, or when the connection breaks.
	Events() <-chan models.Event

	// Err returns the error that broke the channel, wrapping [ErrChannel],
	// or nil if it ended normally. Valid once Events is closed.
	Err() error

	// Close shuts the channel down. Safe to call more than once.
	Close() error
}
