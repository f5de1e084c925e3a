package loki

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Error(msg string, args ...any) {
}

func Test_ConfigValidation(t *testing.T) {
	cfg := Config{}
	_, err := New(context.Background(), cfg, nopLogger{})
	assert.Error(t, err)

	cfg.Url = "SomeUrl"
	pusher, err := New(context.Background(), cfg, nopLogger{})
	assert.NoError(t, err)
	defer pusher.Stop()

	assert.Equal(t, cfg.Url, pusher.config.Url)
	assert.Equal(t, 1000, pusher.config.BatchMaxSize)
	assert.Equal(t, 5*time.Second, pusher.config.BatchMaxWait)
	assert.Equal(t, map[string]string{}, pusher.config.Labels)
}

func Test_StopFlushesPendingBatch(t *testing.T) {
	received := make(chan pushRequest, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "pusher", username)
		assert.Equal(t, "secret", password)
		assert.Equal(t, "gzip", r.Header.Get("Content-Encoding"))

		gz, err := gzip.NewReader(r.Body)
		require.NoError(t, err)
		var request pushRequest
		require.NoError(t, json.NewDecoder(gz).Decode(&request))
		received <- request

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pusher, err := New(context.Background(), Config{
		Url:      server.URL,
		Username: "pusher",
		Password: "secret",
		Labels:   map[string]string{"app": "karirku"},
	}, nopLogger{})
	require.NoError(t, err)

	require.NoError(t, pusher.Push(LogEntry{Level: "info", Message: "hello"}))
	pusher.Stop()

	select {
	case request := <-received:
		require.Len(t, request.Streams, 1)
		assert.Equal(t, map[string]string{"app": "karirku"}, request.Streams[0].Stream)
		require.Len(t, request.Streams[0].Values, 1)
		assert.Contains(t, request.Streams[0].Values[0][1], `"msg":"hello"`)
	case <-time.After(2 * time.Second):
		t.Fatal("pending batch was not flushed on stop")
	}
}
