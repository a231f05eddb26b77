// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountNotice is a one-shot signal forwarded from the sync engine to the
// rest of the application.
type AccountNotice int

const (
	// NoticeNone means nothing needs the user's attention.
	NoticeNone AccountNotice = iota

	// NoticeAuthExpired means the server rejected the bearer token; the user
	// has to log in again.
	NoticeAuthExpired

	// NoticeNoSubscription means the server reported no active subscription.
	NoticeNoSubscription
)

// String returns the snake_case name of the notice.
func (n AccountNotice) String() string {
	switch n {
	case NoticeAuthExpired:
		return "auth_expired"
	case NoticeNoSubscription:
		return "no_subscription"
	default:
		return "none"
	}
}

// AccountStatus is the login and subscription state published by the
// account gateway.
type AccountStatus struct {
	// Resolved is false until the gateway has determined the status.
	Resolved bool

	LoggedIn           bool
	SubscriptionActive bool

	// UserID is the token subject, or zero when not logged in.
	UserID int64

	// Notice is the most recent notice raised by the sync engine.
	Notice AccountNotice
}

// SyncAllowed reports whether the sync engine may be enabled.
func (s AccountStatus) SyncAllowed() bool {
	return s.Resolved && s.LoggedIn && s.SubscriptionActive
}
