package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mvidaller/padel-league/internal/padel"
	"github.com/mvidaller/padel-league/internal/store"
)

type ScoreService struct {
	db    *sqlx.DB
	store *store.LeagueStore
}

func NewScoreService(db *sqlx.DB, store *store.LeagueStore) *ScoreService {
	return &ScoreService{db: db, store: store}
}

// UpdateScore applies a one-sided score edit to a match and persists the
// result. Whichever side was typed in, the opposite side becomes the
// remainder, so the stored score always sums to the match total.
func (s *ScoreService) UpdateScore(ctx context.Context, matchID uuid.UUID, side, value int) (*padel.Match, error) {
	match, err := s.store.GetMatch(ctx, matchID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	updated, err := match.WithScore(side, value)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateMatchScore(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update match score: %w", err)
	}

	return &updated, nil
}
