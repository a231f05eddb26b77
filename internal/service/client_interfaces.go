// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/progress-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AccountGateway exposes the login and subscription status of the current
// account and supplies the bearer token used by the backup adapter. It is
// constructed once per process and shared by every component that needs it.
type AccountGateway interface {
	// Status returns the latest account status.
	Status() models.AccountStatus

	// Subscribe returns a channel that always holds the newest status and a
	// function that releases it. The current status is delivered
	// immediately.
	Subscribe() (<-chan models.AccountStatus, func())

	// Token returns the bearer token. It fails with ErrNoToken when the user
	// is not logged in and with ErrTokenIsExpired when the token has expired.
	Token(ctx context.Context) (string, error)

	// NotifyAuthExpired is called when the server rejected the token.
	NotifyAuthExpired()

	// NotifyNoSubscription is called when the server reported no active
	// subscription.
	NotifyNoSubscription()
}

// Snapshotter produces and restores the opaque snapshot blob. Restore must
// replace the local dataset all-or-nothing.
type Snapshotter interface {
	PerformBackup(ctx context.Context, dst string) error
	Restore(ctx context.Context, src string) error
}

// FingerprintProvider derives the local fingerprint from persisted state and
// keeps its timestamp current.
type FingerprintProvider interface {
	// Init generates and persists the dataset id on first run.
	Init() error

	// Local returns the current local fingerprint.
	Local() (models.SyncFingerprint, error)

	// Cached returns the last fingerprint confirmed to match the remote
	// side, or nil if the device never synced.
	Cached() (*models.SyncFingerprint, error)

	// SaveCached persists fp as the last-synced fingerprint.
	SaveCached(fp models.SyncFingerprint) error

	// Adopt makes fp the local and the cached fingerprint after a restore.
	Adopt(fp models.SyncFingerprint) error

	// SupportedVersion is the newest schema version this client can read.
	SupportedVersion() int

	// Run bumps the local timestamp on every sync-affecting store change
	// until ctx is done.
	Run(ctx context.Context) error
}

// SnapshotTransfer moves whole-dataset snapshots to and from the backup
// server. Temporary files are removed on every exit path.
type SnapshotTransfer interface {
	// Upload snapshots the local dataset and sends it with fp.
	Upload(ctx context.Context, fp models.SyncFingerprint) error

	// Download fetches the remote snapshot, restores it and returns the
	// fingerprint from the frame header.
	Download(ctx context.Context) (models.SyncFingerprint, error)
}

// SyncEngine is the sync state machine. One task runs at a time; a new
// intent aborts the running task before it starts.
type SyncEngine interface {
	// State returns the current state.
	State() models.SyncState

	// Subscribe returns a channel that always holds the newest state and a
	// function that releases it. History is not replayed.
	Subscribe() (<-chan models.SyncState, func())

	// SubmitIntent validates intent against the current state and starts
	// the matching task.
	SubmitIntent(intent models.Intent) error

	// Cancel aborts the running task, waits for its cleanup and moves to
	// the Canceled state. It does nothing when no task is running.
	Cancel()

	// Run follows the account status until ctx is done.
	Run(ctx context.Context) error
}
