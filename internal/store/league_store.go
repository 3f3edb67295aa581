package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mvidaller/padel-league/internal/middleware"
	"github.com/mvidaller/padel-league/internal/padel"
)

type LeagueStore struct {
	db *sqlx.DB
}

func NewLeagueStore(db *sqlx.DB) *LeagueStore {
	return &LeagueStore{db: db}
}

func (s *LeagueStore) CreateLeague(ctx context.Context, tx *sqlx.Tx, league *padel.League) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO leagues (id, owner_id, name, seed)
        VALUES (:id, :owner_id, :name, :seed)`, league)
	return err
}

func (s *LeagueStore) CreatePlayers(ctx context.Context, tx *sqlx.Tx, players []padel.Player) error {
	if len(players) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, `INSERT INTO players (id, league_id, name, slot, is_duo)
            VALUES (:id, :league_id, :name, :slot, :is_duo)`, players)
	return err
}

func (s *LeagueStore) CreateMatches(ctx context.Context, tx *sqlx.Tx, matches []padel.Match) error {
	if len(matches) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, `INSERT INTO matches (id, league_id, round_number, court, team1_a, team1_b, team2_a, team2_b, score1, score2)
		VALUES (:id, :league_id, :round_number, :court, :team1_a, :team1_b, :team2_a, :team2_b, :score1, :score2)`, matches)
	return err
}

func (s *LeagueStore) GetLeague(ctx context.Context, id string) (*padel.League, error) {
	var league padel.League
	err := s.db.GetContext(ctx, &league, "SELECT * FROM leagues WHERE id = ?", id)
	return &league, err
}

func (s *LeagueStore) GetLeaguesByUser(ctx context.Context) ([]padel.League, error) {
	var leagues []padel.League
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}
	err := s.db.SelectContext(ctx, &leagues, "SELECT * FROM leagues WHERE owner_id = ? ORDER BY created_at DESC", userID)
	return leagues, err
}

func (s *LeagueStore) GetPlayers(ctx context.Context, leagueID string) ([]padel.Player, error) {
	var players []padel.Player
	err := s.db.SelectContext(ctx, &players, "SELECT * FROM players WHERE league_id = ? ORDER BY slot ASC", leagueID)
	return players, err
}

func (s *LeagueStore) GetMatches(ctx context.Context, leagueID string) ([]padel.Match, error) {
	var matches []padel.Match
	err := s.db.SelectContext(ctx, &matches, "SELECT * FROM matches WHERE league_id = ? ORDER BY round_number ASC, court ASC", leagueID)
	return matches, err
}

func (s *LeagueStore) GetMatch(ctx context.Context, id string) (*padel.Match, error) {
	var match padel.Match
	err := s.db.GetContext(ctx, &match, "SELECT * FROM matches WHERE id = ?", id)
	return &match, err
}

func (s *LeagueStore) UpdateMatchScore(ctx context.Context, match *padel.Match) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE matches SET score1 = :score1, score2 = :score2 WHERE id = :id`, match)
	return err
}
