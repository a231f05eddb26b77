// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/progress-sync/models"
)

func TestChangeNotifier_FanOut(t *testing.T) {
	n := NewChangeNotifier()
	a, unsubA := n.Subscribe()
	b, unsubB := n.Subscribe()
	defer unsubA()
	defer unsubB()

	change := models.StoreChange{Store: models.StoreDecks, AffectsSync: true, At: time.Now()}
	n.Publish(change)

	assert.Equal(t, change, <-a)
	assert.Equal(t, change, <-b)
}

func TestChangeNotifier_UnsubscribeReleasesBlockedPublish(t *testing.T) {
	n := NewChangeNotifier()
	_, unsub := n.Subscribe()

	for i := 0; i < changeBufferSize; i++ {
		n.Publish(models.StoreChange{Store: models.StoreReviews})
	}

	published := make(chan struct{})
	go func() {
		n.Publish(models.StoreChange{Store: models.StoreReviews})
		close(published)
	}()

	select {
	case <-published:
		t.Fatal("publish must block while the subscriber buffer is full")
	case <-time.After(50 * time.Millisecond):
	}

	unsub()
	unsub()

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("publish still blocked after unsubscribe")
	}
}

func TestChangeNotifier_NoSubscribers(t *testing.T) {
	n := NewChangeNotifier()
	require.NotPanics(t, func() {
		n.Publish(models.StoreChange{Store: models.StoreDecks})
	})
}
