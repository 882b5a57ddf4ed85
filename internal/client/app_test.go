// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/code-historian-client/internal/adapter"
	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/internal/mock"
	"github.com/MKhiriev/code-historian-client/internal/service"
	"github.com/MKhiriev/code-historian-client/internal/sink"
	"github.com/MKhiriev/code-historian-client/internal/workers"
	"github.com/MKhiriev/code-historian-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// syncBuffer guards a bytes.Buffer shared between the console and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// staticSubscription replays a fixed list of events and then ends normally.
type staticSubscription struct {
	sessionID string
	events    chan models.Event
}

func newStaticSubscription(sessionID string, events ...models.Event) *staticSubscription {
	ch := make(chan models.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return &staticSubscription{sessionID: sessionID, events: ch}
}

func (s *staticSubscription) SessionID() string           { return s.sessionID }
func (s *staticSubscription) Events() <-chan models.Event { return s.events }
func (s *staticSubscription) Err() error                  { return nil }
func (s *staticSubscription) Close() error                { return nil }

func newTestApp(t *testing.T, projectPath string) (*App, *mock.MockServerAdapter, *mock.MockChannelDialer, *syncBuffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockDialer := mock.NewMockChannelDialer(ctrl)

	out := &syncBuffer{}
	console := NewConsole(out)
	updateSink := sink.New(logger.Nop())
	pool := workers.NewPool(config.ClientWorkers{MaxConcurrentLaunches: 1}, logger.Nop())
	cfg := &config.ClientConfig{App: config.ClientApp{ProjectPath: projectPath}}

	services := service.NewClientServices(cfg, mockAdapter, mockDialer, updateSink, pool, console, logger.Nop())

	app, err := NewApp(services, console, updateSink, cfg.App, logger.Nop())
	require.NoError(t, err)

	return app, mockAdapter, mockDialer, out
}

func resolved(resp models.AnalysisResponse, err error) <-chan adapter.Outcome[models.AnalysisResponse] {
	ch := make(chan adapter.Outcome[models.AnalysisResponse], 1)
	ch <- adapter.Outcome[models.AnalysisResponse]{Value: resp, Err: err}
	return ch
}

func TestNewApp_RequiresProjectPath(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, NewConsole(&bytes.Buffer{}), sink.New(logger.Nop()), config.ClientApp{ProjectPath: " "}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoProjectPath)
}

func TestApp_Run_Completed(t *testing.T) {
	app, mockAdapter, mockDialer, out := newTestApp(t, "/home/u/proj")

	mockAdapter.EXPECT().
		StartAnalysisAsync(gomock.Any(), models.AnalysisRequest{ProjectPath: "/home/u/proj"}, models.Credential{}).
		Return(resolved(models.AnalysisResponse{ID: "abc"}, nil))
	mockDialer.EXPECT().
		Open(gomock.Any(), "abc", gomock.Any()).
		Return(newStaticSubscription("abc",
			models.Event{Kind: models.EventProgress, SessionID: "abc", Progress: &models.ProgressEvent{Percent: 50}},
			models.Event{Kind: models.EventCompleted, SessionID: "abc"},
		), nil)

	err := app.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "started session abc")
	assert.Contains(t, out.String(), " 50.0%")
	assert.Contains(t, out.String(), "completed session abc")
}

func TestApp_Run_Failed(t *testing.T) {
	app, mockAdapter, _, out := newTestApp(t, "/home/u/proj")

	mockAdapter.EXPECT().
		StartAnalysisAsync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(resolved(models.AnalysisResponse{}, fmt.Errorf("%w: connection refused", adapter.ErrTransport)))

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Contains(t, out.String(), "Failed to start analysis: the server is unreachable")
}

func TestApp_Run_Interrupted(t *testing.T) {
	app, mockAdapter, _, _ := newTestApp(t, "/home/u/proj")

	pending := make(chan adapter.Outcome[models.AnalysisResponse])
	mockAdapter.EXPECT().
		StartAnalysisAsync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return((<-chan adapter.Outcome[models.AnalysisResponse])(pending))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := app.Run(ctx)
	assert.ErrorIs(t, err, ErrInterrupted)
}
