package store

import (
	"context"
	"fmt"

	"github.com/natanaeljr/gerlib/internal/config"
	"github.com/natanaeljr/gerlib/internal/logger"
)

// NewRemoteStorage opens the registry selected by cfg. With the sqlite
// driver pending schema migrations are applied first.
func NewRemoteStorage(ctx context.Context, cfg config.Registry, log *logger.Logger) (RemoteRepository, error) {
	log.Debug().
		Str("func", "NewRemoteStorage").
		Str("driver", cfg.Driver).
		Str("path", cfg.Path).
		Msg("opening remote registry")

	switch cfg.Driver {
	case config.DriverJSON, "":
		return NewFileRemoteRepository(cfg.Path, log)

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return NewRemoteRepository(db, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
