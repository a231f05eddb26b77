// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/progress-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ProgressRepository is the local SQLite store of decks, card scheduling
// state and review history. Every successful mutation is published to the
// [ChangeNotifier] as a sync-affecting change.
type ProgressRepository interface {
	SaveDeck(ctx context.Context, deck models.Deck) error
	DeleteDeck(ctx context.Context, deckID string) error
	ListDecks(ctx context.Context) ([]models.Deck, error)
	SaveCardState(ctx context.Context, state models.CardState) error
	CardStates(ctx context.Context, deckID string) ([]models.CardState, error)
	AddReview(ctx context.Context, review models.Review) (int64, error)
	Reviews(ctx context.Context, deckID string, limit int) ([]models.Review, error)
}

// SyncStateStore persists the local fingerprint parts and the last-synced
// fingerprint. It survives restarts.
type SyncStateStore interface {
	LocalDataID() (string, error)
	SetLocalDataID(id string) error
	LocalDataTimestamp() (*int64, error)
	SetLocalDataTimestamp(ts *int64) error
	// BumpLocalDataTimestamp sets the timestamp to max(now, current) and
	// returns the stored value.
	BumpLocalDataTimestamp(now int64) (int64, error)
	CachedFingerprint() (*models.SyncFingerprint, error)
	SetCachedFingerprint(fp *models.SyncFingerprint) error
	// AdoptFingerprint sets the local id and timestamp and the cached
	// fingerprint to fp in one transaction.
	AdoptFingerprint(fp models.SyncFingerprint) error
	Close() error
}

// ChangeNotifier fans out local store mutations.
type ChangeNotifier interface {
	// Subscribe returns a channel of changes and a function that releases it.
	Subscribe() (<-chan models.StoreChange, func())
	Publish(change models.StoreChange)
}

// PreferencesStore is the YAML preferences file. Only tracked keys are
// sync-affecting.
type PreferencesStore interface {
	Get(key string) (any, bool)
	Set(key string, value any) error
	All() map[string]any
	Path() string
	// Reload re-reads the file and publishes a change if it differs from
	// the in-memory copy.
	Reload() error
	// Replace moves src over the preferences file and loads it without
	// publishing a change.
	Replace(src string) error
}
