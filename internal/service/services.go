// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/progress-sync/internal/config"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/store"
)

// Services groups the backup server's business services.
type Services struct {
	AuthService    AuthService
	BackupService  BackupService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		BackupService:  NewBackupService(storages.BackupRepository, storages.BlobStorage, cfg.App, cfg.Storage, logger),
		AppInfoService: appInfo,
	}, nil
}
