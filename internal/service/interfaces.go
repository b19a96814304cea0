package service

import (
	"context"

	"github.com/pgtools/pg-config-view/models"
)

// ConfigService serves the build-configuration report.
type ConfigService interface {
	// GetConfig returns the full 22-entry table in declared order.
	GetConfig(ctx context.Context) ([]models.ConfigEntry, error)

	// GetValue returns the entry for the given key name.
	GetValue(ctx context.Context, name string) (models.ConfigEntry, error)
}

// AppInfoService reports application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
