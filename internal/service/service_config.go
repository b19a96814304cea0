// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgtools/pg-config-view/internal/config"
	"github.com/pgtools/pg-config-view/internal/logger"
	"github.com/pgtools/pg-config-view/internal/report"
	"github.com/pgtools/pg-config-view/internal/store"
	"github.com/pgtools/pg-config-view/models"
)

type configService struct {
	reporter *report.Reporter
	table    store.ConfigTable

	logger *logger.Logger
}

// NewConfigService builds the reporter for execPath (resolved once at
// process start and treated as immutable thereafter) and materializes
// the table into the query-layer store.
func NewConfigService(ctx context.Context, execPath string, cfg *config.StructuredConfig, table store.ConfigTable, log *logger.Logger) (ConfigService, error) {
	if execPath == "" {
		return nil, ErrNoExecutablePath
	}

	rep := report.NewWithFlags(execPath, buildFlags(cfg))

	if err := table.Load(ctx, rep); err != nil {
		return nil, fmt.Errorf("materializing config table: %w", err)
	}
	log.Info().Str("exec_path", execPath).Msg("config table materialized")

	return &configService{reporter: rep, table: table, logger: log}, nil
}

// GetConfig recomputes the table on every call rather than reading the
// store, so the answer always reflects the reporter's inputs directly.
func (s *configService) GetConfig(ctx context.Context) ([]models.ConfigEntry, error) {
	return s.reporter.Report(), nil
}

// GetValue answers by-name lookups from the materialized table. Names
// are case-insensitive on the way in; the stored keys are upper-case.
func (s *configService) GetValue(ctx context.Context, name string) (models.ConfigEntry, error) {
	return s.table.SelectByName(ctx, strings.ToUpper(name))
}

// buildFlags layers the injected build-configuration map from cfg over
// the linker-baked defaults. Fields left empty in both places surface as
// "not recorded" in the report.
func buildFlags(cfg *config.StructuredConfig) report.Flags {
	flags := report.DefaultFlags()

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	override(&flags.Product, cfg.App.Product)
	override(&flags.Version, cfg.App.Version)
	override(&flags.Configure, cfg.Build.Configure)
	override(&flags.CC, cfg.Build.CC)
	override(&flags.CPPFlags, cfg.Build.CPPFlags)
	override(&flags.CFlags, cfg.Build.CFlags)
	override(&flags.CFlagsSL, cfg.Build.CFlagsSL)
	override(&flags.LDFlags, cfg.Build.LDFlags)
	override(&flags.LDFlagsSL, cfg.Build.LDFlagsSL)
	override(&flags.Libs, cfg.Build.Libs)

	return flags
}
