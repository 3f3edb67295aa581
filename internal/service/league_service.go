package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mvidaller/padel-league/internal/middleware"
	"github.com/mvidaller/padel-league/internal/padel"
	"github.com/mvidaller/padel-league/internal/store"
)

type LeagueService struct {
	db    *sqlx.DB
	store *store.LeagueStore
}

func NewLeagueService(db *sqlx.DB, store *store.LeagueStore) *LeagueService {
	return &LeagueService{db: db, store: store}
}

type LeagueData struct {
	League  *padel.League
	Players []padel.Player
	Matches []padel.Match
}

func (s *LeagueService) GetLeagueData(ctx context.Context, id string) (*LeagueData, error) {
	league, err := s.store.GetLeague(ctx, id)
	if err != nil {
		return nil, err
	}

	players, err := s.store.GetPlayers(ctx, id)
	if err != nil {
		return nil, err
	}

	matches, err := s.store.GetMatches(ctx, id)
	if err != nil {
		return nil, err
	}

	return &LeagueData{
		League:  league,
		Players: players,
		Matches: matches,
	}, nil
}

func (s *LeagueService) GetLeaguesForUser(ctx context.Context) ([]padel.League, error) {
	return s.store.GetLeaguesByUser(ctx)
}

// CreateLeague generates the schedule for the given roster and persists the
// league, its players and all 45 matches in one transaction. Roster order is
// kept as the slot order.
func (s *LeagueService) CreateLeague(ctx context.Context, name string, playerNames []string, seed int64) (uuid.UUID, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	leagueID := uuid.New()
	ownerID, _ := middleware.GetUserIDFromContext(ctx)
	league := padel.League{
		ID:      leagueID,
		OwnerID: ownerID,
		Name:    name,
		Seed:    seed,
	}

	players := make([]padel.Player, 0, len(playerNames))
	for i, playerName := range playerNames {
		players = append(players, padel.Player{
			ID:       uuid.New(),
			LeagueID: leagueID,
			Name:     strings.TrimSpace(playerName),
			Slot:     i + 1,
			IsDuo:    padel.IsDuoName(playerName),
		})
	}

	matches, err := GenerateSchedule(players, seed)
	if err != nil {
		return uuid.Nil, err
	}
	for i := range matches {
		matches[i].ID = uuid.New()
		matches[i].LeagueID = leagueID
	}

	if err := s.store.CreateLeague(ctx, tx, &league); err != nil {
		return uuid.Nil, err
	}
	if err := s.store.CreatePlayers(ctx, tx, players); err != nil {
		return uuid.Nil, err
	}
	if err := s.store.CreateMatches(ctx, tx, matches); err != nil {
		return uuid.Nil, err
	}

	return leagueID, tx.Commit()
}
