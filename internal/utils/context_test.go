// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeys(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "subscriptionActive", SubscriptionCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "present", ctx: context.WithValue(context.Background(), UserIDCtxKey, int64(42)), wantID: 42, wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "42")},
		{name: "plain string key is not ours", ctx: context.WithValue(context.Background(), "userID", int64(42))}, //nolint:staticcheck
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestGetSubscriptionFromContext(t *testing.T) {
	assert.True(t, GetSubscriptionFromContext(context.WithValue(context.Background(), SubscriptionCtxKey, true)))
	assert.False(t, GetSubscriptionFromContext(context.WithValue(context.Background(), SubscriptionCtxKey, false)))
	assert.False(t, GetSubscriptionFromContext(context.Background()))
	assert.False(t, GetSubscriptionFromContext(context.WithValue(context.Background(), SubscriptionCtxKey, "yes")))
}
