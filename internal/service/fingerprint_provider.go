// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/store"
	"github.com/MKhiriev/progress-sync/internal/utils"
	"github.com/MKhiriev/progress-sync/models"
)

type fingerprintProvider struct {
	state    store.SyncStateStore
	notifier store.ChangeNotifier

	ids              *utils.UUIDGenerator
	supportedVersion int
	now              func() time.Time

	logger *logger.Logger
}

// NewFingerprintProvider creates a FingerprintProvider backed by state.
// supportedVersion is the local schema version reported in every local
// fingerprint.
func NewFingerprintProvider(state store.SyncStateStore, notifier store.ChangeNotifier, supportedVersion int, logger *logger.Logger) FingerprintProvider {
	return &fingerprintProvider{
		state:            state,
		notifier:         notifier,
		ids:              utils.NewUUIDGenerator(),
		supportedVersion: supportedVersion,
		now:              time.Now,
		logger:           logger.WithComponent("fingerprint-provider"),
	}
}

func (p *fingerprintProvider) Init() error {
	id, err := p.state.LocalDataID()
	if err != nil {
		return fmt.Errorf("read local data id: %w", err)
	}
	if id != "" {
		return nil
	}

	id = p.ids.Generate()
	if err = p.state.SetLocalDataID(id); err != nil {
		return fmt.Errorf("persist local data id: %w", err)
	}

	p.logger.Info().Str("data_id", id).Msg("generated local data id")
	return nil
}

func (p *fingerprintProvider) Local() (models.SyncFingerprint, error) {
	id, err := p.state.LocalDataID()
	if err != nil {
		return models.SyncFingerprint{}, fmt.Errorf("read local data id: %w", err)
	}

	ts, err := p.state.LocalDataTimestamp()
	if err != nil {
		return models.SyncFingerprint{}, fmt.Errorf("read local data timestamp: %w", err)
	}

	return models.SyncFingerprint{
		DataID:        id,
		DataVersion:   p.supportedVersion,
		DataTimestamp: ts,
	}, nil
}

func (p *fingerprintProvider) Cached() (*models.SyncFingerprint, error) {
	fp, err := p.state.CachedFingerprint()
	if err != nil {
		return nil, fmt.Errorf("read cached fingerprint: %w", err)
	}
	return fp, nil
}

func (p *fingerprintProvider) SaveCached(fp models.SyncFingerprint) error {
	if err := p.state.SetCachedFingerprint(&fp); err != nil {
		return fmt.Errorf("persist cached fingerprint: %w", err)
	}
	return nil
}

func (p *fingerprintProvider) Adopt(fp models.SyncFingerprint) error {
	if err := p.state.AdoptFingerprint(fp); err != nil {
		return fmt.Errorf("adopt fingerprint %s: %w", fp, err)
	}

	p.logger.Info().Stringer("fingerprint", fp).Msg("adopted restored fingerprint")
	return nil
}

func (p *fingerprintProvider) SupportedVersion() int {
	return p.supportedVersion
}

// Run implements the worker loop. Changes of stores that do not affect
// sync are ignored.
func (p *fingerprintProvider) Run(ctx context.Context) error {
	changes, unsubscribe := p.notifier.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if !change.AffectsSync {
				continue
			}

			ts, err := p.state.BumpLocalDataTimestamp(p.now().UnixMilli())
			if err != nil {
				p.logger.Err(err).Str("store", change.Store).Msg("failed to bump local data timestamp")
				continue
			}

			p.logger.Debug().Str("store", change.Store).Int64("data_timestamp", ts).Msg("local data timestamp bumped")
		}
	}
}
