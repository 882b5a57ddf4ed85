package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/code-historian-client/models"
)

// Launch is the handle of one StartAnalysis call. All methods are safe for
// concurrent use.
type Launch struct {
	id          string
	projectPath string

	mu        sync.Mutex
	state     models.LaunchState
	sessionID string
	err       error

	cancel context.CancelFunc
	done   chan struct{}
}

func newLaunch(id, projectPath string, cancel context.CancelFunc) *Launch {
	return &Launch{
		id:          id,
		projectPath: projectPath,
		state:       models.LaunchPending,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
}

// ID returns the client-side launch identifier.
func (l *Launch) ID() string {
	return l.id
}

// ProjectPath returns the path as passed to StartAnalysis.
func (l *Launch) ProjectPath() string {
	return l.projectPath
}

// SessionID returns the server-issued session id, or "" before the backend
// accepted the launch.
func (l *Launch) SessionID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessionID
}

// State returns the current lifecycle state.
func (l *Launch) State() models.LaunchState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the error that ended the launch. It is nil while the launch
// runs and after it completed.
func (l *Launch) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Done is closed once the launch reaches a final state.
func (l *Launch) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the launch ends or ctx expires.
func (l *Launch) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return l.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops the launch. Events that arrive afterwards are discarded.
func (l *Launch) Cancel() {
	l.cancel()
}

func (l *Launch) setState(state models.LaunchState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.state.IsFinal() {
		l.state = state
	}
}

// assignSession records the session id. It succeeds at most once.
func (l *Launch) assignSession(sessionID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sessionID != "" || sessionID == "" {
		return false
	}
	l.sessionID = sessionID
	return true
}

// finish moves the launch into a final state. Only the first call wins; it
// runs notify before Done is closed and reports whether this call won.
func (l *Launch) finish(state models.LaunchState, err error, notify func()) bool {
	l.mu.Lock()
	if l.state.IsFinal() {
		l.mu.Unlock()
		return false
	}
	l.state = state
	l.err = err
	l.mu.Unlock()

	if notify != nil {
		notify()
	}
	close(l.done)
	l.cancel()
	return true
}
