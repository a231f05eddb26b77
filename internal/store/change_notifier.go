// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"

	"github.com/MKhiriev/progress-sync/models"
)

const changeBufferSize = 16

type changeSubscriber struct {
	ch   chan models.StoreChange
	done chan struct{}
	once sync.Once
}

// changeNotifier delivers every published change to every subscriber.
// Publish blocks until each subscriber has buffer space or has unsubscribed,
// so sync-affecting changes are never dropped.
type changeNotifier struct {
	mu          sync.RWMutex
	subscribers map[*changeSubscriber]struct{}
}

// NewChangeNotifier returns an empty [ChangeNotifier].
func NewChangeNotifier() ChangeNotifier {
	return &changeNotifier{subscribers: make(map[*changeSubscriber]struct{})}
}

func (n *changeNotifier) Subscribe() (<-chan models.StoreChange, func()) {
	sub := &changeSubscriber{
		ch:   make(chan models.StoreChange, changeBufferSize),
		done: make(chan struct{}),
	}

	n.mu.Lock()
	n.subscribers[sub] = struct{}{}
	n.mu.Unlock()

	unsubscribe := func() {
		sub.once.Do(func() {
			// releases a Publish blocked on this subscriber
			close(sub.done)

			n.mu.Lock()
			delete(n.subscribers, sub)
			n.mu.Unlock()
		})
	}

	return sub.ch, unsubscribe
}

func (n *changeNotifier) Publish(change models.StoreChange) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for sub := range n.subscribers {
		select {
		case sub.ch <- change:
		case <-sub.done:
		}
	}
}
