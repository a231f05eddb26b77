// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Store names used in [StoreChange] notifications.
const (
	StoreDecks       = "decks"
	StoreCardStates  = "card_states"
	StoreReviews     = "reviews"
	StorePreferences = "preferences"
)

// Deck is a user practice deck.
type Deck struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CardState is the SRS scheduling state of a single card inside a deck. The
// scheduler that computes these values lives outside this module.
type CardState struct {
	DeckID   string    `json:"deck_id"`
	CardID   string    `json:"card_id"`
	Interval int       `json:"interval"`
	Ease     float64   `json:"ease"`
	DueAt    time.Time `json:"due_at"`
}

// Review is one entry of the review history.
type Review struct {
	ID         int64     `json:"id"`
	DeckID     string    `json:"deck_id"`
	CardID     string    `json:"card_id"`
	Grade      int       `json:"grade"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// StoreChange is published after a mutation of a local store.
type StoreChange struct {
	// Store is one of the Store* names.
	Store string

	// AffectsSync is true when the mutation must bump the local fingerprint
	// timestamp.
	AffectsSync bool

	At time.Time
}
