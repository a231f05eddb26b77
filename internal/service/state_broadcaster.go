// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// broadcaster holds a single current value and fans it out to subscribers.
// Each subscriber channel has room for one value and always holds the
// newest one; older values are dropped, never queued.
type broadcaster[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[uint64]chan T
	next    uint64
}

func newBroadcaster[T any](initial T) *broadcaster[T] {
	return &broadcaster[T]{
		current: initial,
		subs:    make(map[uint64]chan T),
	}
}

// Current returns the latest published value.
func (b *broadcaster[T]) Current() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Publish replaces the current value and hands it to every subscriber.
func (b *broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = v
	for _, ch := range b.subs {
		replaceLatest(ch, v)
	}
}

// Subscribe registers a subscriber. The current value is delivered
// immediately. The returned function is idempotent and closes the channel.
func (b *broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++

	ch := make(chan T, 1)
	ch <- b.current
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

// replaceLatest drops a pending value, if any, and stores v. Callers hold
// the broadcaster lock, so no other sender competes for the slot.
func replaceLatest[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
