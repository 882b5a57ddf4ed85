// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"github.com/MKhiriev/code-historian-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server's /api root.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL + "/api", RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: "  "}, logger.Nop())
	require.Error(t, err)
}

// ── StartAnalysis ───────────────────────────────────────────────────────────

func TestStartAnalysis_NoCredential(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/analysis/start", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Values("X-API-Key"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"projectPath":"/home/u/proj"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{ProjectPath: "/home/u/proj"}, models.Credential{})

	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
	assert.EqualValues(t, 1, calls.Load())
}

func TestStartAnalysis_WithCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"k-123"}, r.Header.Values("X-API-Key"))
		_, _ = w.Write([]byte(`{"id":"s-7","status":"running","startTime":"2026-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.StartAnalysis(context.Background(),
		models.AnalysisRequest{ProjectPath: "/home/u/proj"}, models.NewCredential(" k-123 "))

	require.NoError(t, err)
	assert.Equal(t, models.AnalysisResponse{ID: "s-7", Status: "running", StartTime: "2026-01-01T00:00:00Z"}, got)
}

func TestStartAnalysis_BlankCredentialOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Values("X-API-Key"))
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{ProjectPath: "/p"}, models.Credential{APIKey: "   "})
	require.NoError(t, err)
}

func TestStartAnalysis_OptionalFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "/p", body["projectPath"])
		assert.EqualValues(t, 50, body["maxDepth"])
		assert.Equal(t, []any{"vendor", "node_modules"}, body["excludedPaths"])
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{
		ProjectPath:   "/p",
		MaxDepth:      50,
		ExcludedPaths: []string{"vendor", "node_modules"},
	}, models.Credential{})
	require.NoError(t, err)
}

func TestStartAnalysis_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("engine unavailable"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{ProjectPath: "/p"}, models.Credential{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "engine unavailable")
}

func TestStartAnalysis_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{ProjectPath: "/p"}, models.NewCredential("bad"))

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStartAnalysis_NonOKSuccessStatusRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{ProjectPath: "/p"}, models.Credential{})

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestStartAnalysis_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{ProjectPath: "/p"}, models.Credential{})

	assert.ErrorIs(t, err, ErrProtocol)
}

func TestStartAnalysis_MissingID(t *testing.T) {
	for name, body := range map[string]string{
		"no id":    `{"status":"running"}`,
		"blank id": `{"id":"  "}`,
		"empty":    ``,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{ProjectPath: "/p"}, models.Credential{})

			assert.ErrorIs(t, err, ErrProtocol)
		})
	}
}

func TestStartAnalysis_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.StartAnalysis(context.Background(), models.AnalysisRequest{ProjectPath: "/p"}, models.Credential{})

	assert.ErrorIs(t, err, ErrTransport)
}

func TestStartAnalysisAsync_DeliversOneOutcome(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	future := a.StartAnalysisAsync(context.Background(), models.AnalysisRequest{ProjectPath: "/p"}, models.Credential{})

	select {
	case <-future:
		t.Fatal("future resolved before the server answered")
	default:
	}
	close(release)

	out, ok := <-future
	require.True(t, ok)
	require.NoError(t, out.Err)
	assert.Equal(t, "abc", out.Value.ID)

	_, ok = <-future
	assert.False(t, ok, "future must yield exactly one value")
}

// ── Send ────────────────────────────────────────────────────────────────────

func TestSend_PathAndQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/things/42", r.URL.Path)
		assert.Equal(t, "x", r.URL.Query().Get("q"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Send(context.Background(), Request{
		Method:      http.MethodGet,
		Path:        "/things/{id}",
		PathParams:  map[string]string{"id": "42"},
		QueryParams: map[string]string{"q": "x"},
		Headers:     map[string]string{"X-Extra": "yes"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSend_APIKeyOnlyFromCredential(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		cred    models.Credential
		want    []string
	}{
		{name: "empty header without credential", headers: map[string]string{"X-API-Key": ""}, want: nil},
		{name: "lower-case header without credential", headers: map[string]string{"x-api-key": "forged"}, want: nil},
		{name: "header does not override credential", headers: map[string]string{"X-API-Key": ""}, cred: models.NewCredential("k-1"), want: []string{"k-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Values("X-API-Key")
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Send(context.Background(), Request{
				Method:     http.MethodGet,
				Path:       "/ping",
				Headers:    tt.headers,
				Credential: tt.cred,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSendAsync_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	future := a.SendAsync(ctx, Request{Method: http.MethodGet, Path: "/slow"})
	cancel()

	out := <-future
	assert.ErrorIs(t, out.Err, ErrTransport)
	assert.ErrorIs(t, out.Err, context.Canceled)
}

func TestAsync_RecoversPanic(t *testing.T) {
	future := async(context.Background(), func(context.Context) (int, error) {
		panic("boom")
	})

	out := <-future
	assert.ErrorIs(t, out.Err, ErrTransport)
	assert.Contains(t, out.Err.Error(), "boom")
}

// ── Queries ─────────────────────────────────────────────────────────────────

func TestFileHistory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/history/file", r.URL.Path)
		assert.Equal(t, "/p/main.go", r.URL.Query().Get("path"))
		_, _ = w.Write([]byte(`{"filePath":"/p/main.go","commits":[{"hash":"h1","author":"a","message":"m"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FileHistory(context.Background(), "/p/main.go", models.Credential{})

	require.NoError(t, err)
	assert.Equal(t, "/p/main.go", got.FilePath)
	require.Len(t, got.Commits, 1)
	assert.Equal(t, "h1", got.Commits[0].Hash)
}

func TestProjectMetrics_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/metrics/project", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ProjectMetrics(context.Background(), models.Credential{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomMetrics_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/metrics/custom/churn", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("X-API-Key"))
		_, _ = w.Write([]byte(`{"a.go":1.5,"b.go":3}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CustomMetrics(context.Background(), "churn", models.NewCredential("k"))

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a.go": 1.5, "b.go": 3}, got)
}

func TestMetricsSummary_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"metrics":`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.MetricsSummary(context.Background(), models.Credential{})

	assert.ErrorIs(t, err, ErrProtocol)
}
