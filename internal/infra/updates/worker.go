// Package updates registers this installation with the update-delivery
// service so the backend can push data refreshes at it.
package updates

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"larder/config"
	"larder/internal/domain/service"

	"github.com/pkg/errors"
)

const registerTimeout = 10 * time.Second

type worker struct {
	endpoint    string
	serviceName string
	client      *http.Client
	logger      *slog.Logger
}

type noopWorker struct{}

func (noopWorker) Register(context.Context) error { return nil }

// New creates the update-delivery registration worker. With no endpoint
// configured it degrades to a no-op so local-only deployments run without a
// backend.
func New(cfg *config.Config, logger *slog.Logger) service.UpdateWorker {
	if cfg.Updates == nil || cfg.Updates.Endpoint == "" {
		logger.Info("update worker disabled, no endpoint configured")

		return noopWorker{}
	}

	return &worker{
		endpoint:    cfg.Updates.Endpoint,
		serviceName: cfg.Env.ServiceName,
		client:      &http.Client{Timeout: registerTimeout},
		logger:      logger,
	}
}

// Register announces this installation to the update-delivery endpoint.
// Registration is one-shot and best-effort; the caller decides whether a
// failure matters.
func (w *worker) Register(ctx context.Context) error {
	payload, err := json.Marshal(map[string]string{
		"service":       w.serviceName,
		"registered_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal registration payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build registration request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach update endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("update endpoint rejected registration: %s", resp.Status)
	}

	w.logger.Info("registered with update endpoint", slog.String("endpoint", w.endpoint))

	return nil
}
