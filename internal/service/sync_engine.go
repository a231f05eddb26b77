// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/progress-sync/internal/adapter"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/tracing"
	"github.com/MKhiriev/progress-sync/models"
)

// syncEngine runs one task at a time. mu serialises task start and stop;
// emitMu orders state publication against task supersession so a task that
// lost the slot never publishes again.
type syncEngine struct {
	provider FingerprintProvider
	remote   adapter.BackupAdapter
	transfer SnapshotTransfer
	account  AccountGateway

	states *broadcaster[models.SyncState]

	mu      sync.Mutex
	baseCtx context.Context
	cancel  context.CancelFunc
	done    chan struct{}

	emitMu     sync.Mutex
	generation uint64

	tracer *tracing.Tracer
	logger *logger.Logger
}

// NewSyncEngine creates a SyncEngine in the Loading state. It stays there
// until Run receives a resolved account status.
func NewSyncEngine(provider FingerprintProvider, remote adapter.BackupAdapter, transfer SnapshotTransfer, account AccountGateway, tracer *tracing.Tracer, logger *logger.Logger) SyncEngine {
	if tracer == nil {
		tracer = tracing.Nop()
	}

	return &syncEngine{
		provider: provider,
		remote:   remote,
		transfer: transfer,
		account:  account,
		states:   newBroadcaster(models.LoadingState()),
		baseCtx:  context.Background(),
		tracer:   tracer,
		logger:   logger.WithComponent("sync-engine"),
	}
}

func (e *syncEngine) State() models.SyncState {
	return e.states.Current()
}

func (e *syncEngine) Subscribe() (<-chan models.SyncState, func()) {
	return e.states.Subscribe()
}

// Run implements SyncEngine. Entering Enabled always starts a fresh session
// at TrackingChanges; leaving it stops the running task without emitting
// Canceled.
func (e *syncEngine) Run(ctx context.Context) error {
	e.mu.Lock()
	e.baseCtx = ctx
	e.mu.Unlock()

	statuses, unsubscribe := e.account.Subscribe()
	defer unsubscribe()
	defer e.shutdown()

	for {
		select {
		case <-ctx.Done():
			return nil
		case status, ok := <-statuses:
			if !ok {
				return nil
			}
			e.applyAccountStatus(status)
		}
	}
}

func (e *syncEngine) applyAccountStatus(status models.AccountStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := e.states.Current()
	var next models.SyncState
	switch {
	case !status.Resolved:
		next = models.LoadingState()
	case !status.SyncAllowed():
		next = models.DisabledState()
	default:
		next = models.EnabledState(models.TrackingChanges(false))
	}

	if current.Kind == next.Kind {
		return
	}

	e.stopTaskLocked()
	e.publish(next)
	e.logger.Info().Stringer("state", next).Msg("account status changed")
}

func (e *syncEngine) shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTaskLocked()
}

// SubmitIntent implements SyncEngine.
func (e *syncEngine) SubmitIntent(intent models.Intent) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := e.states.Current()
	if !current.IsEnabled() {
		return ErrSyncDisabled
	}

	if err := validateIntent(intent, current); err != nil {
		return err
	}

	e.stopTaskLocked()
	e.startTaskLocked(intent)
	return nil
}

func validateIntent(intent models.Intent, current models.SyncState) error {
	switch intent.Kind {
	case models.IntentRefresh, models.IntentSync:
		return nil
	case models.IntentResolveConflict:
		conflict := current.Session.Conflict
		if current.Session.Kind != models.SessionConflict || conflict == nil {
			return ErrNoConflict
		}

		switch intent.Strategy {
		case models.UploadLocal:
			return nil
		case models.DownloadRemote:
			if !conflict.CanDownload() {
				return ErrDownloadUnavailable
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownIntent, intent)
}

// Cancel implements SyncEngine.
func (e *syncEngine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopTaskLocked() {
		e.publish(models.EnabledState(models.Canceled()))
		e.logger.Info().Msg("sync task canceled")
	}
}

// stopTaskLocked supersedes the running task, cancels it and waits for its
// cleanup. It reports whether the task was still running. Callers hold mu.
func (e *syncEngine) stopTaskLocked() bool {
	if e.cancel == nil {
		return false
	}

	running := true
	select {
	case <-e.done:
		running = false
	default:
	}

	e.emitMu.Lock()
	e.generation++
	e.emitMu.Unlock()

	e.cancel()
	<-e.done

	e.cancel = nil
	e.done = nil
	return running
}

// startTaskLocked launches intent in a new goroutine. Callers hold mu.
func (e *syncEngine) startTaskLocked(intent models.Intent) {
	ctx, cancel := context.WithCancel(e.baseCtx)
	done := make(chan struct{})

	e.emitMu.Lock()
	e.generation++
	gen := e.generation
	e.emitMu.Unlock()

	e.cancel = cancel
	e.done = done

	go func() {
		defer close(done)
		defer cancel()
		e.runTask(ctx, gen, intent)
	}()
}

func (e *syncEngine) runTask(ctx context.Context, gen uint64, intent models.Intent) {
	ctx, span := e.tracer.StartTask(ctx, intent.String())
	log := e.logger.With().Stringer("intent", intent).Logger()

	next, err := e.execute(ctx, gen, intent)
	if ctx.Err() != nil {
		span.SetOutcome(models.SessionCanceled.String())
		span.End(ctx.Err())
		log.Debug().Msg("sync task aborted")
		return
	}

	var issue *models.APIRequestIssue
	if err != nil {
		issue = classifyIssue(err)
		next = models.EnabledState(models.Failed(issue))
		log.Err(err).Stringer("issue", issue.Kind).Msg("sync task failed")
	} else {
		log.Info().Stringer("state", next).Msg("sync task finished")
	}

	e.emit(gen, next)
	span.SetOutcome(next.Session.Kind.String())
	span.End(err)

	// The gateway may disable sync in response, so it is told only after
	// the error state has been published.
	if issue != nil {
		e.notifyAccount(issue)
	}
}

func (e *syncEngine) execute(ctx context.Context, gen uint64, intent models.Intent) (models.SyncState, error) {
	switch intent.Kind {
	case models.IntentRefresh:
		e.emit(gen, models.EnabledState(models.Refreshing()))
		return e.refresh(ctx)
	case models.IntentSync:
		return e.sync(ctx, gen)
	case models.IntentResolveConflict:
		if intent.Strategy == models.DownloadRemote {
			return e.download(ctx, gen)
		}
		return e.upload(ctx, gen)
	default:
		return models.SyncState{}, fmt.Errorf("%w: %s", ErrUnknownIntent, intent)
	}
}

func (e *syncEngine) refresh(ctx context.Context) (models.SyncState, error) {
	info, err := e.diff(ctx)
	if err != nil {
		return models.SyncState{}, err
	}

	switch info.Diff {
	case models.DiffIncompatible, models.DiffRemoteUnsupported:
		return models.EnabledState(models.Conflict(info)), nil
	case models.DiffLocalNewer:
		return models.EnabledState(models.TrackingChanges(true)), nil
	default:
		return models.EnabledState(models.TrackingChanges(false)), nil
	}
}

func (e *syncEngine) sync(ctx context.Context, gen uint64) (models.SyncState, error) {
	info, err := e.diff(ctx)
	if err != nil {
		return models.SyncState{}, err
	}

	switch info.Diff {
	case models.DiffNoRemoteData, models.DiffLocalNewer:
		return e.upload(ctx, gen)
	case models.DiffRemoteNewer:
		return e.download(ctx, gen)
	case models.DiffIncompatible, models.DiffRemoteUnsupported:
		return models.EnabledState(models.Conflict(info)), nil
	default:
		return models.EnabledState(models.TrackingChanges(false)), nil
	}
}

// diff reads the cached fingerprint once and classifies it against the
// local and remote fingerprints.
func (e *syncEngine) diff(ctx context.Context) (models.ConflictInfo, error) {
	local, err := e.provider.Local()
	if err != nil {
		return models.ConflictInfo{}, err
	}

	cached, err := e.provider.Cached()
	if err != nil {
		return models.ConflictInfo{}, err
	}

	remote, err := e.remote.GetFingerprint(ctx)
	if err != nil {
		return models.ConflictInfo{}, fmt.Errorf("fetch remote fingerprint: %w", err)
	}

	diff := ClassifyDiff(local, cached, remote, e.provider.SupportedVersion())
	e.logger.Debug().
		Stringer("local", local).
		Stringer("diff", diff).
		Bool("has_remote", remote != nil).
		Bool("has_cached", cached != nil).
		Msg("fingerprints classified")

	return models.ConflictInfo{Diff: diff, Local: local, Cached: cached, Remote: remote}, nil
}

// upload sends the local fingerprint read before the snapshot is taken. A
// mutation racing the upload bumps the local timestamp past the sent one,
// so the next diff reports LocalNewer.
func (e *syncEngine) upload(ctx context.Context, gen uint64) (models.SyncState, error) {
	local, err := e.provider.Local()
	if err != nil {
		return models.SyncState{}, err
	}

	e.emit(gen, models.EnabledState(models.Uploading()))
	if err = e.transfer.Upload(ctx, local); err != nil {
		return models.SyncState{}, err
	}

	if err = e.provider.SaveCached(local); err != nil {
		return models.SyncState{}, err
	}

	return models.EnabledState(models.TrackingChanges(false)), nil
}

func (e *syncEngine) download(ctx context.Context, gen uint64) (models.SyncState, error) {
	e.emit(gen, models.EnabledState(models.Downloading()))

	fp, err := e.transfer.Download(ctx)
	if err != nil {
		return models.SyncState{}, err
	}

	// The snapshot is already restored, so adoption must not be skipped
	// even if the task is canceled now.
	if err = e.provider.Adopt(fp); err != nil {
		return models.SyncState{}, err
	}

	return models.EnabledState(models.TrackingChanges(false)), nil
}

func (e *syncEngine) notifyAccount(issue *models.APIRequestIssue) {
	switch issue.Kind {
	case models.IssueNotAuthenticated:
		e.account.NotifyAuthExpired()
	case models.IssueNoSubscription:
		e.account.NotifyNoSubscription()
	}
}

// emit publishes s only while gen is the current task generation.
func (e *syncEngine) emit(gen uint64, s models.SyncState) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	if gen != e.generation {
		return
	}
	e.states.Publish(s)
}

func (e *syncEngine) publish(s models.SyncState) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()
	e.states.Publish(s)
}
