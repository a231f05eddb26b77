// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/progress-sync/models"

type stateMsg struct {
	state models.SyncState
}

type accountMsg struct {
	status models.AccountStatus
}

// intentDoneMsg reports whether the engine accepted an intent.
type intentDoneMsg struct {
	intent models.Intent
	err    error
}

type copiedMsg struct {
	dataID string
	err    error
}

type clearStatusMsg struct{}
