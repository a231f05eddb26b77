// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/mock"
	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubUI struct {
	run func(ctx context.Context) error
}

func (u stubUI) Run(ctx context.Context) error {
	return u.run(ctx)
}

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockSyncEngine, chan models.SyncState) {
	t.Helper()

	ctrl := gomock.NewController(t)
	engine := mock.NewMockSyncEngine(ctrl)
	provider := mock.NewMockFingerprintProvider(ctrl)

	states := make(chan models.SyncState)
	engine.EXPECT().Run(gomock.Any()).DoAndReturn(blockUntilDone).AnyTimes()
	engine.EXPECT().Subscribe().Return((<-chan models.SyncState)(states), func() {}).AnyTimes()
	provider.EXPECT().Run(gomock.Any()).DoAndReturn(blockUntilDone).AnyTimes()

	services := &service.ClientServices{Engine: engine, Fingerprint: provider}
	return newApp(nil, services, nil, nil, ui, logger.Nop()), engine, states
}

func TestApp_Run_StopsWhenUIQuits(t *testing.T) {
	app, _, _ := newTestApp(t, stubUI{run: func(context.Context) error { return nil }})

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after the ui quit")
	}
}

func TestApp_Run_StopsOnContextCancel(t *testing.T) {
	app, _, _ := newTestApp(t, stubUI{run: blockUntilDone})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_Run_ReturnsUIError(t *testing.T) {
	uiErr := errors.New("terminal lost")
	app, _, _ := newTestApp(t, stubUI{run: func(context.Context) error { return uiErr }})

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, uiErr)
}

func TestApp_RefreshOnEnable(t *testing.T) {
	app, engine, states := newTestApp(t, nil)

	submitted := make(chan struct{}, 4)
	engine.EXPECT().SubmitIntent(models.RefreshIntent()).DoAndReturn(func(models.Intent) error {
		submitted <- struct{}{}
		return nil
	}).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.refreshOnEnable(ctx) }()

	states <- models.LoadingState()
	states <- models.EnabledState(models.TrackingChanges(false))
	states <- models.EnabledState(models.Refreshing())
	states <- models.DisabledState()
	states <- models.EnabledState(models.TrackingChanges(false))
	// The loop has taken the last state once this send completes.
	states <- models.EnabledState(models.TrackingChanges(false))

	cancel()
	require.NoError(t, <-done)
	assert.Len(t, submitted, 2)
}
