package service

import "context"

// UpdateWorker delivers application updates in the background. The
// connectivity monitor registers it exactly once at startup; a registration
// failure is logged and otherwise ignored.
type UpdateWorker interface {
	Register(ctx context.Context) error
}
