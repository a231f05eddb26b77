// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		AccountToken  string   `json:"account_token"`
		LogFile       string   `json:"log_file"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BackupDir     string `json:"backup_dir"`
			MaxBackupSize int64  `json:"max_backup_size"`
		} `json:"files,omitempty"`

		Local struct {
			ProgressDSN     string `json:"progress_dsn"`
			StateFile       string `json:"state_file"`
			PreferencesFile string `json:"preferences_file"`
			TempDir         string `json:"temp_dir"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		TrackedPreferences []string `json:"tracked_preferences"`
	} `json:"sync,omitempty"`

	Tracing struct {
		Exporter    string `json:"exporter"`
		Endpoint    string `json:"endpoint"`
		ServiceName string `json:"service_name"`
	} `json:"tracing,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			AccountToken:  jsonCfg.App.AccountToken,
			LogFile:       jsonCfg.App.LogFile,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				BackupDir:     jsonCfg.Storage.Files.BackupDir,
				MaxBackupSize: jsonCfg.Storage.Files.MaxBackupSize,
			},
			Local: Local{
				ProgressDSN:     jsonCfg.Storage.Local.ProgressDSN,
				StateFile:       jsonCfg.Storage.Local.StateFile,
				PreferencesFile: jsonCfg.Storage.Local.PreferencesFile,
				TempDir:         jsonCfg.Storage.Local.TempDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			TrackedPreferences: jsonCfg.Sync.TrackedPreferences,
		},
		Tracing: Tracing{
			Exporter:    jsonCfg.Tracing.Exporter,
			Endpoint:    jsonCfg.Tracing.Endpoint,
			ServiceName: jsonCfg.Tracing.ServiceName,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
