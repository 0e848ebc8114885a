package store

import (
	"context"
	"fmt"

	"github.com/mkarev/go-dataset-hub/internal/config"
	"github.com/mkarev/go-dataset-hub/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	DatasetRepository DatasetRepository

	db *DB
}

// NewStorages opens the database selected by cfg (PostgreSQL by default,
// SQLite for single-node deployments), applies schema migrations, and wires
// the repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		DatasetRepository: NewDatasetRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
