package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/internal/telemetry"
	"github.com/MKhiriev/code-historian-client/models"
	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
)

const (
	channelPathPrefix = "/ws/analysis/"
	eventsBuffer      = 16
	closeWriteTimeout = time.Second
)

type websocketDialer struct {
	baseURL   string
	dialer    *websocket.Dialer
	attempts  int
	backoff   time.Duration
	readLimit int64

	logger *logger.Logger
}

// NewChannelDialer constructs the websocket implementation of
// [ChannelDialer]. The channel root is channelCfg.URL when set, otherwise it
// is derived from adapterCfg.BaseURL.
func NewChannelDialer(channelCfg config.ClientChannel, adapterCfg config.ClientAdapter, logger *logger.Logger) (ChannelDialer, error) {
	baseURL, err := channelBaseURL(adapterCfg.BaseURL, channelCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid channel base url: %w", err)
	}

	attempts := channelCfg.DialAttempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := channelCfg.DialBackoff
	if backoff <= 0 {
		backoff = time.Millisecond
	}
	readLimit := channelCfg.MaxFrameSize
	if readLimit <= 0 {
		readLimit = config.DefaultMaxFrameSize
	}

	return &websocketDialer{
		baseURL: baseURL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: channelCfg.HandshakeTimeout,
		},
		attempts:  attempts,
		backoff:   backoff,
		readLimit: readLimit,
		logger:    logger,
	}, nil
}

// Open implements [ChannelDialer]. Rejections of the handshake with 401, 403
// or 404 are final; any other failure is retried with exponential backoff
// until the configured number of attempts is spent.
//
// The returned subscription closes itself when ctx is cancelled.
func (d *websocketDialer) Open(ctx context.Context, sessionID string, cred models.Credential) (Subscription, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: empty session id", ErrChannel)
	}

	ctx, span := telemetry.StartSpan(ctx, "analysis.channel")
	defer span.End()

	target := d.baseURL + channelPathPrefix + url.PathEscape(sessionID)
	span.SetAttributes(attribute.String("session.id", sessionID), attribute.String("url.full", target))

	header := http.Header{}
	if cred.IsSet() {
		header.Set(apiKeyHeader, cred.Key())
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))

	log := d.logger.WithStr("session_id", sessionID)

	var (
		conn    *websocket.Conn
		attempt int
	)
	b := retry.WithMaxRetries(uint64(d.attempts-1), retry.NewExponential(d.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		c, resp, err := d.dialer.DialContext(ctx, target, header)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			log.Warn().Err(err).Int("attempt", attempt).Int("status", status).Msg("channel dial failed")
			if isFinalHandshakeStatus(status) {
				return fmt.Errorf("handshake rejected with status %d: %w", status, err)
			}
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: open channel for session %s after %d attempt(s): %w", ErrChannel, sessionID, attempt, err)
	}

	log.Info().Int("attempt", attempt).Msg("channel opened")

	conn.SetReadLimit(d.readLimit)

	return newSubscription(ctx, conn, sessionID, log), nil
}

func isFinalHandshakeStatus(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	default:
		return false
	}
}

type wsSubscription struct {
	sessionID string
	conn      *websocket.Conn
	events    chan models.Event
	done      chan struct{}

	closed    atomic.Bool
	closeOnce sync.Once
	stopWatch func() bool

	mu  sync.Mutex
	err error

	logger *logger.Logger
}

func newSubscription(ctx context.Context, conn *websocket.Conn, sessionID string, logger *logger.Logger) *wsSubscription {
	s := &wsSubscription{
		sessionID: sessionID,
		conn:      conn,
		events:    make(chan models.Event, eventsBuffer),
		done:      make(chan struct{}),
		logger:    logger,
	}
	s.stopWatch = context.AfterFunc(ctx, func() { _ = s.Close() })

	go s.readLoop()

	return s
}

func (s *wsSubscription) SessionID() string {
	return s.sessionID
}

func (s *wsSubscription) Events() <-chan models.Event {
	return s.events
}

func (s *wsSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close sends a normal closure frame and releases the connection. Events
// still buffered are discarded by the consumer's select on its own context;
// no further events are produced.
func (s *wsSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)

		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteTimeout))
		err = s.conn.Close()
	})
	return err
}

func (s *wsSubscription) readLoop() {
	defer close(s.events)
	defer s.stopWatch()
	defer func() { _ = s.Close() }()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.finish(err)
			return
		}

		events, err := decodeFrame(s.sessionID, data)
		if err != nil {
			s.logger.Warn().Err(err).Int("size", len(data)).Msg("skipping channel frame")
			continue
		}

		for _, ev := range events {
			select {
			case s.events <- ev:
			case <-s.done:
				return
			}
			if ev.IsTerminal() {
				s.logger.Debug().Str("kind", string(ev.Kind)).Msg("terminal frame received")
				return
			}
		}
	}
}

func (s *wsSubscription) finish(err error) {
	if s.closed.Load() {
		return
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		s.logger.Info().Msg("channel closed by server")
		return
	}

	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		s.logger.Warn().Int("code", closeErr.Code).Str("text", closeErr.Text).Msg("channel closed abnormally")
	} else {
		s.logger.Warn().Err(err).Msg("channel broken")
	}

	s.mu.Lock()
	s.err = fmt.Errorf("%w: session %s: %w", ErrChannel, s.sessionID, err)
	s.mu.Unlock()
}
