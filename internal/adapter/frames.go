package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/code-historian-client/models"
)

// frame is the superset of every message shape the backend pushes. The
// legacy shapes carry a single key ({"progress":n}, {"completed":true},
// {"error":"..."}); newer servers add an explicit "type".
type frame struct {
	Type      string          `json:"type"`
	Progress  *float64        `json:"progress"`
	Metrics   json.RawMessage `json:"metrics"`
	Completed *bool           `json:"completed"`
	Error     *string         `json:"error"`
	Message   string          `json:"message"`
}

// decodeFrame turns one text message into events, ordered progress, metrics,
// then the terminal marker. A frame that yields no event is an error.
func decodeFrame(sessionID string, data []byte) ([]models.Event, error) {
	var f frame
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: malformed frame: %w", ErrProtocol, err)
	}

	if f.Type != "" {
		return decodeTypedFrame(sessionID, f)
	}

	var events []models.Event
	if f.Progress != nil {
		events = append(events, progressEvent(sessionID, *f.Progress))
	}
	if hasDocument(f.Metrics) {
		events = append(events, metricsEvent(sessionID, f.Metrics))
	}
	switch {
	case f.Error != nil:
		events = append(events, failedEvent(sessionID, *f.Error, f.Message))
	case f.Completed != nil && *f.Completed:
		events = append(events, models.Event{Kind: models.EventCompleted, SessionID: sessionID})
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("%w: frame carries no known field", ErrProtocol)
	}
	return events, nil
}

func decodeTypedFrame(sessionID string, f frame) ([]models.Event, error) {
	switch models.EventKind(strings.ToLower(f.Type)) {
	case models.EventProgress:
		if f.Progress == nil {
			return nil, fmt.Errorf("%w: progress frame without value", ErrProtocol)
		}
		return []models.Event{progressEvent(sessionID, *f.Progress)}, nil
	case models.EventMetrics:
		if !hasDocument(f.Metrics) {
			return nil, fmt.Errorf("%w: metrics frame without document", ErrProtocol)
		}
		return []models.Event{metricsEvent(sessionID, f.Metrics)}, nil
	case models.EventCompleted:
		return []models.Event{{Kind: models.EventCompleted, SessionID: sessionID}}, nil
	case models.EventFailed, "failed":
		msg := ""
		if f.Error != nil {
			msg = *f.Error
		}
		return []models.Event{failedEvent(sessionID, msg, f.Message)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown frame type %q", ErrProtocol, f.Type)
	}
}

func progressEvent(sessionID string, percent float64) models.Event {
	return models.Event{
		Kind:      models.EventProgress,
		SessionID: sessionID,
		Progress:  &models.ProgressEvent{Percent: percent},
	}
}

func metricsEvent(sessionID string, doc json.RawMessage) models.Event {
	payload := make(json.RawMessage, len(doc))
	copy(payload, doc)
	return models.Event{
		Kind:      models.EventMetrics,
		SessionID: sessionID,
		Metrics:   &models.MetricsEvent{Payload: payload},
	}
}

func failedEvent(sessionID, errText, message string) models.Event {
	msg := strings.TrimSpace(errText)
	if msg == "" {
		msg = strings.TrimSpace(message)
	}
	if msg == "" {
		msg = "analysis failed"
	}
	return models.Event{Kind: models.EventFailed, SessionID: sessionID, Message: msg}
}

func hasDocument(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
