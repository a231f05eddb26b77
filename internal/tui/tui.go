// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the sync client. It renders the engine
// and account state and turns key presses into intents.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger.WithComponent("tui"),
	}
}

// Run shows the sync screen until the user quits or ctx is done. Both end
// with a nil error.
func (t *TUI) Run(ctx context.Context) error {
	states, unsubscribeStates := t.services.Engine.Subscribe()
	defer unsubscribeStates()

	statuses, unsubscribeAccount := t.services.Account.Subscribe()
	defer unsubscribeAccount()

	model := newSyncModel(t.services, states, statuses, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Msg("terminal ui stopped")
		return err
	}

	t.logger.Info().Msg("user quit")
	return nil
}
