package store

import (
	"context"
	"fmt"

	"github.com/pgtools/pg-config-view/internal/config"
	"github.com/pgtools/pg-config-view/internal/logger"
)

// Storages bundles every storage backend the application uses.
type Storages struct {
	ConfigTable ConfigTable
}

// NewStorages connects the sqlite database, migrates its schema, and
// wires the config-table store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connecting sqlite: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrating sqlite: %w", err)
	}

	return &Storages{
		ConfigTable: NewConfigTable(db, log),
	}, nil
}
