// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/progress-sync/internal/adapter"
	"github.com/MKhiriev/progress-sync/models"
)

// classifyIssue maps a failed task error to an APIRequestIssue. The HTTP
// status sentinels are checked first, then token failures, then the
// transport error type.
func classifyIssue(err error) *models.APIRequestIssue {
	if err == nil {
		return nil
	}

	var issue *models.APIRequestIssue
	if errors.As(err, &issue) {
		return issue
	}

	kind := models.IssueOther
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		kind = models.IssueNotAuthenticated
	case errors.Is(err, adapter.ErrPaymentRequired):
		kind = models.IssueNoSubscription
	case errors.Is(err, ErrNoToken),
		errors.Is(err, ErrTokenIsExpired),
		errors.Is(err, ErrTokenIsExpiredOrInvalid):
		kind = models.IssueNotAuthenticated
	case errors.Is(err, adapter.ErrNoConnection):
		kind = models.IssueNoConnection
	}

	return &models.APIRequestIssue{Kind: kind, Cause: err}
}
