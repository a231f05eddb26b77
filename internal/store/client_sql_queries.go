// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertDeck = `INSERT INTO decks (id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET title = excluded.title, updated_at = excluded.updated_at;`

	deleteDeck = `DELETE FROM decks WHERE id = ?;`

	selectDecks = `SELECT id, title, created_at, updated_at
		FROM decks
		ORDER BY created_at, id;`

	upsertCardState = `INSERT INTO card_states (deck_id, card_id, interval, ease, due_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (deck_id, card_id) DO UPDATE SET
			interval = excluded.interval,
			ease = excluded.ease,
			due_at = excluded.due_at;`

	selectCardStates = `SELECT deck_id, card_id, interval, ease, due_at
		FROM card_states
		WHERE deck_id = ?
		ORDER BY due_at, card_id;`

	insertReview = `INSERT INTO review_history (deck_id, card_id, grade, reviewed_at)
		VALUES (?, ?, ?, ?);`

	selectReviews = `SELECT id, deck_id, card_id, grade, reviewed_at
		FROM review_history
		WHERE deck_id = ?
		ORDER BY reviewed_at DESC, id DESC
		LIMIT ?;`
)

// progressTables lists the tables a snapshot carries, parents first.
var progressTables = []string{"decks", "card_states", "review_history"}

// ProgressTables returns the tables replaced by a restore, parents first.
func ProgressTables() []string {
	return append([]string(nil), progressTables...)
}
