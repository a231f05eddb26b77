// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] for values that are invalid
// regardless of role. Role-specific requirements are checked by the
// ClientConfig and ServerConfig views.
func (cfg *StructuredConfig) validate() error {
	return validateTracing(cfg.Tracing)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.ProgressDSN == "" || strings.Contains(cfg.Storage.ProgressDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.StateFile == "" || cfg.Storage.PreferencesFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return validateTracing(cfg.Tracing)
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DSN == "" || cfg.Storage.BackupDir == "" || cfg.Storage.MaxBackupSize < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return validateTracing(cfg.Tracing)
}

func validateTracing(cfg Tracing) error {
	switch cfg.Exporter {
	case "", "none", "stdout":
		return nil
	case "otlp":
		if cfg.Endpoint == "" {
			return ErrInvalidTracingConfigs
		}
		return nil
	default:
		return ErrInvalidTracingConfigs
	}
}
