package updates

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"larder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorker_Register_PostsPayload(t *testing.T) {
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := &config.Config{Updates: &config.UpdatesConfig{Endpoint: srv.URL}}
	cfg.Env.ServiceName = "larder"

	w := New(cfg, discardLogger())
	require.NoError(t, w.Register(context.Background()))
	assert.Equal(t, "larder", payload["service"])
	assert.NotEmpty(t, payload["registered_at"])
}

func TestWorker_Register_ServerErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := &config.Config{Updates: &config.UpdatesConfig{Endpoint: srv.URL}}

	w := New(cfg, discardLogger())
	assert.Error(t, w.Register(context.Background()))
}

func TestWorker_NoEndpointDegradesToNoop(t *testing.T) {
	cfg := &config.Config{}

	w := New(cfg, discardLogger())
	assert.NoError(t, w.Register(context.Background()))
}
