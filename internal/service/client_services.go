// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/progress-sync/internal/adapter"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/store"
	"github.com/MKhiriev/progress-sync/internal/tracing"
)

// ClientServices groups the client's sync services.
type ClientServices struct {
	Account     AccountGateway
	Fingerprint FingerprintProvider
	Transfer    SnapshotTransfer
	Engine      SyncEngine
}

// NewClientServices wires the sync engine. The account gateway is built by
// the caller because the backup adapter needs it as its token source.
func NewClientServices(storages *store.ClientStorages, backupAdapter adapter.BackupAdapter, account AccountGateway, snapshotter Snapshotter, tempDir string, supportedVersion int, tracer *tracing.Tracer, logger *logger.Logger) (*ClientServices, error) {
	fingerprints := NewFingerprintProvider(storages.SyncState, storages.Notifier, supportedVersion, logger)
	if err := fingerprints.Init(); err != nil {
		return nil, fmt.Errorf("init fingerprint provider: %w", err)
	}

	transfer := NewSnapshotTransfer(backupAdapter, snapshotter, tempDir, supportedVersion, tracer, logger)

	return &ClientServices{
		Account:     account,
		Fingerprint: fingerprints,
		Transfer:    transfer,
		Engine:      NewSyncEngine(fingerprints, backupAdapter, transfer, account, tracer, logger),
	}, nil
}
