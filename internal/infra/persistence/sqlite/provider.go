package sqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"larder/config"
	"larder/internal/errors"

	"go.uber.org/fx"
)

const defaultDBPath = "larder.db"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the device-local database and hooks it into the application
// lifecycle.
func New(params Params) (*sql.DB, error) {
	dbPath := defaultDBPath
	if params.Config.Local != nil && params.Config.Local.DBPath != "" {
		dbPath = params.Config.Local.DBPath
	}

	db, err := Open(dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local database")
	}

	params.Logger.Info("local database ready", slog.String("path", dbPath))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}
