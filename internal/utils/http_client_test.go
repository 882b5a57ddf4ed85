package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, UserAgent, got.Get("User-Agent"))
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a := NewHTTPClient("http://a.example", time.Second)
	b := NewHTTPClient("http://b.example", 0)

	assert.NotSame(t, a.Client, b.Client)
	assert.Equal(t, "http://a.example", a.BaseURL)
	assert.Equal(t, "http://b.example", b.BaseURL)
}
