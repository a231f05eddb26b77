// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds the backup server's token and integrity settings.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	HashKey       string
	Version       string
}

// ServerStorage holds the backup server's metadata DB and blob directory.
type ServerStorage struct {
	DSN           string
	BackupDir     string
	MaxBackupSize int64
}

// ServerConfig is the backup server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Storage ServerStorage
	Tracing Tracing
}

// GetServerConfig builds and validates the server-specific config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			HashKey:       cfg.App.HashKey,
			Version:       cfg.App.Version,
		},
		Server: cfg.Server,
		Storage: ServerStorage{
			DSN:           cfg.Storage.DB.DSN,
			BackupDir:     cfg.Storage.Files.BackupDir,
			MaxBackupSize: cfg.Storage.Files.MaxBackupSize,
		},
		Tracing: cfg.Tracing,
	}

	if serverCfg.Tracing.ServiceName == "" {
		serverCfg.Tracing.ServiceName = "progress-sync-server"
	}

	return serverCfg
}
