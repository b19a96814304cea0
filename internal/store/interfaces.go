package store

import (
	"context"

	"github.com/pgtools/pg-config-view/internal/report"
	"github.com/pgtools/pg-config-view/models"
)

// ConfigTable is the query-layer view of the materialized configuration
// report.
type ConfigTable interface {
	// Load replaces the table contents with a fresh report, atomically.
	Load(ctx context.Context, rep *report.Reporter) error

	// SelectAll returns every entry in declared report order.
	SelectAll(ctx context.Context) ([]models.ConfigEntry, error)

	// SelectByName returns the entry for name, or ErrEntryNotFound.
	SelectByName(ctx context.Context, name string) (models.ConfigEntry, error)
}
