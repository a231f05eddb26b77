// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/progress-sync/internal/config"
	"github.com/MKhiriev/progress-sync/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService serves the configured version on GET /version. Clients
// use it as a reachability probe, so an unversioned build is refused.
func NewAppInfoService(cfg config.ServerApp, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", cfg.Version).Msg("backup server version")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
