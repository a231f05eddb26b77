// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/models"
)

// progressRepository is the SQLite implementation of [ProgressRepository].
type progressRepository struct {
	*DB
	notifier ChangeNotifier
	now      func() time.Time
	logger   *logger.Logger
}

// NewProgressRepository wires a [ProgressRepository] to db. Mutations are
// published on notifier.
func NewProgressRepository(db *DB, notifier ChangeNotifier, logger *logger.Logger) ProgressRepository {
	return &progressRepository{
		DB:       db,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

func (p *progressRepository) changed(store string) {
	p.notifier.Publish(models.StoreChange{Store: store, AffectsSync: true, At: p.now()})
}

func (p *progressRepository) SaveDeck(ctx context.Context, deck models.Deck) error {
	now := p.now().UTC()
	if deck.CreatedAt.IsZero() {
		deck.CreatedAt = now
	}
	deck.UpdatedAt = now

	if _, err := p.DB.ExecContext(ctx, upsertDeck, deck.ID, deck.Title, deck.CreatedAt, deck.UpdatedAt); err != nil {
		p.logger.Err(err).Str("func", "progressRepository.SaveDeck").Str("deck_id", deck.ID).Msg("failed to save deck")
		return p.wrapDriverError(ErrExecutingStatement, err)
	}

	p.changed(models.StoreDecks)
	return nil
}

func (p *progressRepository) DeleteDeck(ctx context.Context, deckID string) error {
	result, err := p.DB.ExecContext(ctx, deleteDeck, deckID)
	if err != nil {
		p.logger.Err(err).Str("func", "progressRepository.DeleteDeck").Str("deck_id", deckID).Msg("failed to delete deck")
		return p.wrapDriverError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return p.wrapDriverError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDeckNotFound
	}

	p.changed(models.StoreDecks)
	return nil
}

func (p *progressRepository) ListDecks(ctx context.Context) ([]models.Deck, error) {
	rows, err := p.DB.QueryContext(ctx, selectDecks)
	if err != nil {
		return nil, p.wrapDriverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	decks := make([]models.Deck, 0, 16)
	for rows.Next() {
		var deck models.Deck
		if err = rows.Scan(&deck.ID, &deck.Title, &deck.CreatedAt, &deck.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		decks = append(decks, deck)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return decks, nil
}

func (p *progressRepository) SaveCardState(ctx context.Context, state models.CardState) error {
	_, err := p.DB.ExecContext(ctx, upsertCardState, state.DeckID, state.CardID, state.Interval, state.Ease, state.DueAt.UTC())
	if err != nil {
		p.logger.Err(err).
			Str("func", "progressRepository.SaveCardState").
			Str("deck_id", state.DeckID).
			Str("card_id", state.CardID).
			Msg("failed to save card state")
		return p.wrapDriverError(ErrExecutingStatement, err)
	}

	p.changed(models.StoreCardStates)
	return nil
}

func (p *progressRepository) CardStates(ctx context.Context, deckID string) ([]models.CardState, error) {
	rows, err := p.DB.QueryContext(ctx, selectCardStates, deckID)
	if err != nil {
		return nil, p.wrapDriverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.CardState, 0, 64)
	for rows.Next() {
		var s models.CardState
		if err = rows.Scan(&s.DeckID, &s.CardID, &s.Interval, &s.Ease, &s.DueAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		states = append(states, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

func (p *progressRepository) AddReview(ctx context.Context, review models.Review) (int64, error) {
	if review.ReviewedAt.IsZero() {
		review.ReviewedAt = p.now()
	}

	result, err := p.DB.ExecContext(ctx, insertReview, review.DeckID, review.CardID, review.Grade, review.ReviewedAt.UTC())
	if err != nil {
		p.logger.Err(err).
			Str("func", "progressRepository.AddReview").
			Str("deck_id", review.DeckID).
			Msg("failed to add review")
		return 0, p.wrapDriverError(ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, p.wrapDriverError(ErrExecutingStatement, err)
	}

	p.changed(models.StoreReviews)
	return id, nil
}

func (p *progressRepository) Reviews(ctx context.Context, deckID string, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := p.DB.QueryContext(ctx, selectReviews, deckID, limit)
	if err != nil {
		return nil, p.wrapDriverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, limit)
	for rows.Next() {
		var r models.Review
		if err = rows.Scan(&r.ID, &r.DeckID, &r.CardID, &r.Grade, &r.ReviewedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reviews = append(reviews, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}
