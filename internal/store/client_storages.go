// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/progress-sync/internal/config"
	"github.com/MKhiriev/progress-sync/internal/logger"
)

// ClientStorages groups all client-side stores into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// DB is the SQLite progress database; the backup service snapshots it
	// directly.
	DB *DB

	Progress    ProgressRepository
	SyncState   SyncStateStore
	Preferences PreferencesStore
	Notifier    ChangeNotifier
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite progress database and runs its migrations;
//  2. opens the bbolt sync state file;
//  3. loads the preferences file with the tracked key set.
//
// All stores publish their mutations on one shared [ChangeNotifier].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, syncCfg config.ClientSync, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.ProgressDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	state, err := OpenSyncStateStore(cfg.StateFile)
	if err != nil {
		db.Close()
		return nil, err
	}

	notifier := NewChangeNotifier()
	prefs, err := OpenPreferences(cfg.PreferencesFile, syncCfg.TrackedPreferences, notifier, logger)
	if err != nil {
		db.Close()
		state.Close()
		return nil, err
	}

	return &ClientStorages{
		DB:          db,
		Progress:    NewProgressRepository(db, notifier, logger),
		SyncState:   state,
		Preferences: prefs,
		Notifier:    notifier,
	}, nil
}

// Close releases the database and the state file.
func (s *ClientStorages) Close() error {
	return errors.Join(s.DB.Close(), s.SyncState.Close())
}
