// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used to sign uploaded snapshots. Empty
	// disables the HashSHA256 header.
	HashKey string
	// AccountToken is the bearer token presented to the backup server.
	AccountToken string
	// LogFile is the client log destination.
	LogFile string
	// Version is the application version shown in the UI footer.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backup server address.
	HTTPAddress string
	// RequestTimeout is the timeout for fingerprint requests.
	RequestTimeout time.Duration
}

// ClientStorage groups the client's local store paths.
type ClientStorage struct {
	// ProgressDSN is the SQLite progress database path.
	ProgressDSN string
	// StateFile is the bbolt sync metadata file.
	StateFile string
	// PreferencesFile is the YAML preferences file.
	PreferencesFile string
	// TempDir holds snapshot files during transfers.
	TempDir string
}

// ClientSync contains sync engine settings.
type ClientSync struct {
	// TrackedPreferences are the preference keys that affect sync.
	TrackedPreferences []string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backup server address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync engine settings.
	Sync ClientSync
	// Tracing selects the span exporter.
	Tracing Tracing
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:      cfg.App.HashKey,
			AccountToken: cfg.App.AccountToken,
			LogFile:      cfg.App.LogFile,
			Version:      cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			ProgressDSN:     cfg.Storage.Local.ProgressDSN,
			StateFile:       cfg.Storage.Local.StateFile,
			PreferencesFile: cfg.Storage.Local.PreferencesFile,
			TempDir:         cfg.Storage.Local.TempDir,
		},
		Sync:    ClientSync{TrackedPreferences: cfg.Sync.TrackedPreferences},
		Tracing: cfg.Tracing,
	}

	if clientCfg.Storage.TempDir == "" {
		clientCfg.Storage.TempDir = os.TempDir()
	}
	if clientCfg.Tracing.ServiceName == "" {
		clientCfg.Tracing.ServiceName = "progress-sync-client"
	}

	return clientCfg
}
