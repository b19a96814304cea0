package service

import (
	"context"
	"fmt"
	"os"

	"github.com/pgtools/pg-config-view/internal/config"
	"github.com/pgtools/pg-config-view/internal/logger"
	"github.com/pgtools/pg-config-view/internal/store"
)

// Services bundles the application's service layer.
type Services struct {
	ConfigService  ConfigService
	AppInfoService AppInfoService
}

// NewServices resolves the running executable's path (once, at startup)
// and wires the config and app-info services.
func NewServices(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (*Services, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving executable path: %w", err)
	}

	return NewServicesForExecutable(ctx, execPath, storages, cfg, log)
}

// NewServicesForExecutable is NewServices with an explicit executable
// path, for callers (and tests) that already know it.
func NewServicesForExecutable(ctx context.Context, execPath string, storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (*Services, error) {
	configService, err := NewConfigService(ctx, execPath, cfg, storages.ConfigTable, log)
	if err != nil {
		return nil, fmt.Errorf("creating config service: %w", err)
	}

	flags := buildFlags(cfg)
	appInfoService, err := NewAppInfoService(flags.Product+" "+flags.Version, log)
	if err != nil {
		return nil, fmt.Errorf("creating app info service: %w", err)
	}

	return &Services{
		ConfigService:  configService,
		AppInfoService: appInfoService,
	}, nil
}
