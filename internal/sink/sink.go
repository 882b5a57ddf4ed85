// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sink bridges live analysis updates to the host's display layer.
//
// A [Sink] forwards progress and metrics only while a display is attached
// and the update belongs to a session the sink is bound to. Everything else
// is dropped silently, which makes late updates after cancellation or
// display teardown harmless.
package sink

import (
	"math"
	"sync"

	"github.com/MKhiriev/code-historian-client/internal/logger"
)

// Display is the host's rendering surface.
//
// Methods are called while the sink holds its lock, so implementations
// must not call back into the Sink.
type Display interface {
	UpdateProgress(percent float64)
	UpdateMetrics(document string)
}

// Disposable is implemented by displays that can be torn down by the host
// independently of Detach.
type Disposable interface {
	IsDisposed() bool
}

// Sink routes updates to the attached [Display].
type Sink struct {
	mu       sync.RWMutex
	display  Display
	sessions map[string]struct{}
	current  string

	logger *logger.Logger
}

// New returns a Sink with no display attached and no session bound.
func New(logger *logger.Logger) *Sink {
	return &Sink{
		sessions: make(map[string]struct{}),
		logger:   logger,
	}
}

// Attach sets the display that receives updates, replacing any previous one.
func (s *Sink) Attach(display Display) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = display
}

// Detach removes the display. Subsequent updates are no-ops.
func (s *Sink) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = nil
}

// Bind opens sessionID for updates and makes it the current session.
func (s *Sink) Bind(sessionID string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = struct{}{}
	s.current = sessionID
}

// Unbind closes sessionID. Updates for it are dropped from now on.
func (s *Sink) Unbind(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	if s.current == sessionID {
		s.current = ""
	}
}

// Current returns the most recently bound session that is still open.
func (s *Sink) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != ""
}

// ForSession returns the update handle of sessionID.
func (s *Sink) ForSession(sessionID string) *Updates {
	return &Updates{sink: s, sessionID: sessionID}
}

// Updates is the per-session entry point used by launch workers.
type Updates struct {
	sink      *Sink
	sessionID string
}

// OnProgress forwards percent to the display. Values outside [0,100] are
// clamped; NaN is dropped.
func (u *Updates) OnProgress(percent float64) {
	u.sink.progress(u.sessionID, percent)
}

// OnMetrics forwards a metrics document to the display verbatim.
func (u *Updates) OnMetrics(document string) {
	u.sink.metrics(u.sessionID, document)
}

func (s *Sink) progress(sessionID string, percent float64) {
	log := s.logger.With().Str("session_id", sessionID).Logger()

	if math.IsNaN(percent) {
		log.Warn().Msg("dropping NaN progress")
		return
	}
	if clamped := math.Min(100, math.Max(0, percent)); clamped != percent {
		log.Warn().Float64("percent", percent).Float64("clamped", clamped).Msg("progress out of range")
		percent = clamped
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	display, ok := s.target(sessionID)
	if !ok {
		log.Debug().Float64("percent", percent).Msg("progress dropped")
		return
	}
	display.UpdateProgress(percent)
}

func (s *Sink) metrics(sessionID, document string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	display, ok := s.target(sessionID)
	if !ok {
		s.logger.Debug().Str("session_id", sessionID).Msg("metrics dropped")
		return
	}
	display.UpdateMetrics(document)
}

// target must be called with s.mu held.
func (s *Sink) target(sessionID string) (Display, bool) {
	if s.display == nil {
		return nil, false
	}
	if d, ok := s.display.(Disposable); ok && d.IsDisposed() {
		return nil, false
	}
	if _, open := s.sessions[sessionID]; !open {
		return nil, false
	}
	return s.display, true
}
