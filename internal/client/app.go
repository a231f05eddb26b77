// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/progress-sync/internal/adapter"
	"github.com/MKhiriev/progress-sync/internal/backup"
	"github.com/MKhiriev/progress-sync/internal/config"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/internal/store"
	"github.com/MKhiriev/progress-sync/internal/tracing"
	"github.com/MKhiriev/progress-sync/internal/tui"
	"github.com/MKhiriev/progress-sync/internal/workers"
	"github.com/MKhiriev/progress-sync/migrations"
	"github.com/MKhiriev/progress-sync/models"
)

const shutdownTimeout = 5 * time.Second

// UI is the front end the client runs in the foreground. Its Run returning
// ends the process.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	watcher  *store.PreferencesWatcher
	tracer   *tracing.Tracer
	ui       UI
	logger   *logger.Logger
}

// NewApp opens the local stores and wires the sync services around them.
// The account gateway is created here once and shared by the adapter and
// the engine.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	// Spans go to the log file; stdout belongs to the terminal UI.
	tracer, err := tracing.New(ctx, cfg.Tracing, cfg.App.Version, log)
	if err != nil {
		return nil, fmt.Errorf("create tracer: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.Sync, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	account := service.NewAccountGateway(cfg.App.AccountToken, log)

	backupAdapter, err := adapter.NewHTTPBackupAdapter(cfg.Adapter, cfg.App, account, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create backup adapter: %w", err)
	}

	snapshotter := backup.NewSnapshotter(storages.DB, storages.Preferences, cfg.Storage.TempDir, log)

	services, err := service.NewClientServices(storages, backupAdapter, account, snapshotter, cfg.Storage.TempDir, migrations.ClientSchemaVersion, tracer, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return newApp(storages, services, store.NewPreferencesWatcher(storages.Preferences, log), tracer, tui.New(services, buildInfo, log), log), nil
}

func newApp(storages *store.ClientStorages, services *service.ClientServices, watcher *store.PreferencesWatcher, tracer *tracing.Tracer, ui UI, log *logger.Logger) *App {
	return &App{
		storages: storages,
		services: services,
		watcher:  watcher,
		tracer:   tracer,
		ui:       ui,
		logger:   log.WithComponent("client"),
	}
}

// Run starts the background workers and the UI. It returns when the UI
// exits, ctx is done or a worker fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.close()

	group := workers.NewWorkers(a.logger).
		Add("sync-engine", a.services.Engine).
		Add("fingerprint-provider", a.services.Fingerprint).
		Add("auto-refresh", workers.WorkerFunc(a.refreshOnEnable)).
		Add("ui", workers.WorkerFunc(func(ctx context.Context) error {
			defer cancel()
			return a.ui.Run(ctx)
		}))
	if a.watcher != nil {
		group.Add("preferences-watcher", a.watcher)
	}

	a.logger.Info().Msg("client started")
	err := group.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

// refreshOnEnable submits a Refresh every time the engine enters Enabled so
// the screen shows the diff without the user asking for it.
func (a *App) refreshOnEnable(ctx context.Context) error {
	states, unsubscribe := a.services.Engine.Subscribe()
	defer unsubscribe()

	enabled := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-states:
			if !ok {
				return nil
			}

			if s.IsEnabled() && !enabled {
				if err := a.services.Engine.SubmitIntent(models.RefreshIntent()); err != nil {
					a.logger.Warn().Err(err).Msg("initial refresh rejected")
				}
			}
			enabled = s.IsEnabled()
		}
	}
}

func (a *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			a.logger.Err(err).Msg("failed to flush spans")
		}
	}
	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close client storages")
		}
	}
}
