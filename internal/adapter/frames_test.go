package adapter

import (
	"testing"

	"github.com/MKhiriev/code-historian-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  []models.EventKind
	}{
		{name: "progress", frame: `{"progress":42.5}`, want: []models.EventKind{models.EventProgress}},
		{name: "metrics", frame: `{"metrics":{"files":3}}`, want: []models.EventKind{models.EventMetrics}},
		{name: "completed", frame: `{"completed":true}`, want: []models.EventKind{models.EventCompleted}},
		{name: "error", frame: `{"error":"engine crashed"}`, want: []models.EventKind{models.EventFailed}},
		{
			name:  "progress with metrics and completion",
			frame: `{"completed":true,"metrics":{"a":1},"progress":100}`,
			want:  []models.EventKind{models.EventProgress, models.EventMetrics, models.EventCompleted},
		},
		{name: "typed progress", frame: `{"type":"progress","progress":10}`, want: []models.EventKind{models.EventProgress}},
		{name: "typed metrics", frame: `{"type":"metrics","metrics":[1,2]}`, want: []models.EventKind{models.EventMetrics}},
		{name: "typed completed", frame: `{"type":"COMPLETED"}`, want: []models.EventKind{models.EventCompleted}},
		{name: "typed error", frame: `{"type":"error","message":"boom"}`, want: []models.EventKind{models.EventFailed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := decodeFrame("s-1", []byte(tt.frame))
			require.NoError(t, err)

			kinds := make([]models.EventKind, 0, len(events))
			for _, ev := range events {
				assert.Equal(t, "s-1", ev.SessionID)
				kinds = append(kinds, ev.Kind)
			}
			assert.Equal(t, tt.want, kinds)
		})
	}
}

func TestDecodeFrame_Values(t *testing.T) {
	events, err := decodeFrame("s-1", []byte(`{"progress":25,"metrics":{"files":3}}`))
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.NotNil(t, events[0].Progress)
	assert.InDelta(t, 25.0, events[0].Progress.Percent, 1e-9)
	require.NotNil(t, events[1].Metrics)
	assert.JSONEq(t, `{"files":3}`, string(events[1].Metrics.Payload))
}

func TestDecodeFrame_FailureMessage(t *testing.T) {
	events, err := decodeFrame("s-1", []byte(`{"error":"  "}`))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "analysis failed", events[0].Message)

	events, err = decodeFrame("s-1", []byte(`{"type":"error","error":"disk full","message":"ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, "disk full", events[0].Message)
}

func TestDecodeFrame_Rejected(t *testing.T) {
	for name, frame := range map[string]string{
		"malformed":            `{"progress":`,
		"not an object":        `[1,2,3]`,
		"unknown fields only":  `{"heartbeat":1}`,
		"completed false":      `{"completed":false}`,
		"null metrics":         `{"metrics":null}`,
		"unknown type":         `{"type":"heartbeat"}`,
		"typed progress empty": `{"type":"progress"}`,
		"typed metrics empty":  `{"type":"metrics"}`,
		"progress not numeric": `{"progress":"ten"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeFrame("s-1", []byte(frame))
			assert.ErrorIs(t, err, ErrProtocol)
		})
	}
}
