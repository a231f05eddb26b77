// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// IssueKind enumerates the failure classes a sync request can end with.
type IssueKind int

const (
	// IssueNoConnection is a transport failure or timeout.
	IssueNoConnection IssueKind = iota + 1

	// IssueNotAuthenticated is an HTTP 401 or a failed token refresh.
	IssueNotAuthenticated

	// IssueNoSubscription is an HTTP 402.
	IssueNoSubscription

	// IssueOther covers everything else, including malformed responses.
	IssueOther
)

// String returns the snake_case name of the issue kind.
func (k IssueKind) String() string {
	switch k {
	case IssueNoConnection:
		return "no_connection"
	case IssueNotAuthenticated:
		return "not_authenticated"
	case IssueNoSubscription:
		return "no_subscription"
	case IssueOther:
		return "other"
	default:
		return "unknown"
	}
}

// APIRequestIssue is the classified failure of a remote sync request. It
// implements error so it can be returned and wrapped like any other error.
type APIRequestIssue struct {
	Kind  IssueKind
	Cause error
}

// Error implements the error interface.
func (i *APIRequestIssue) Error() string {
	if i.Cause == nil {
		return i.Kind.String()
	}
	return fmt.Sprintf("%s: %v", i.Kind, i.Cause)
}

// Unwrap returns the underlying cause.
func (i *APIRequestIssue) Unwrap() error {
	return i.Cause
}
