// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/models"
)

func describeIssue(issue *models.APIRequestIssue) string {
	if issue == nil {
		return "Sync failed"
	}

	switch issue.Kind {
	case models.IssueNoConnection:
		return "No network connection or the server is unavailable"
	case models.IssueNotAuthenticated:
		return "Your session has expired. Log in again to keep syncing"
	case models.IssueNoSubscription:
		return "Sync requires an active subscription"
	default:
		if issue.Cause != nil {
			return "Sync failed: " + issue.Cause.Error()
		}
		return "Sync failed"
	}
}

// describeRejection explains why the engine refused an intent.
func describeRejection(err error) string {
	switch {
	case errors.Is(err, service.ErrSyncDisabled):
		return "Sync is not available for this account"
	case errors.Is(err, service.ErrNoConflict):
		return "There is no conflict to resolve"
	case errors.Is(err, service.ErrDownloadUnavailable):
		return "The server copy was written by a newer app version. Update the app to download it"
	default:
		return err.Error()
	}
}
