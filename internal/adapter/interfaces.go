package adapter

import (
	"context"

	"github.com/pgtools/pg-config-view/models"
)

// ServerAdapter is the client-side view of a running pg-config-view
// server.
type ServerAdapter interface {
	// GetConfig fetches the full configuration table.
	GetConfig(ctx context.Context) ([]models.ConfigEntry, error)

	// GetValue fetches a single entry by key name.
	GetValue(ctx context.Context, name string) (models.ConfigEntry, error)

	// GetVersion fetches the server's version string.
	GetVersion(ctx context.Context) (string, error)
}
