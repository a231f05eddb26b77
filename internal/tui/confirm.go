// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/progress-sync/models"

// confirmModel asks before a conflict resolution overwrites one side.
type confirmModel struct {
	strategy models.ConflictStrategy
}

func (m confirmModel) View() string {
	var content string
	switch m.strategy {
	case models.DownloadRemote:
		content = "Replace your local progress with the server copy?\nLocal changes since the last sync will be lost."
	default:
		content = "Replace the server copy with your local progress?\nChanges uploaded from other devices will be lost."
	}
	content += "\n\ny yes    n no"
	return overlayBoxStyle.Render(content)
}
