package padel

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Court numbers at the club. The duo hosts every round on court 7.
const (
	DuoCourt    = 7
	SecondCourt = 8
	ThirdCourt  = 9
)

// MatchPoints is the fixed number of points contested per match. A recorded
// score only counts toward statistics when both sides sum to exactly this.
const MatchPoints = 24

type Match struct {
	ID       uuid.UUID `db:"id"`
	LeagueID uuid.UUID `db:"league_id"`

	RoundNumber int `db:"round_number"`
	Court       int `db:"court"`

	Team1A uuid.UUID `db:"team1_a"`
	Team1B uuid.UUID `db:"team1_b"`
	Team2A uuid.UUID `db:"team2_a"`
	Team2B uuid.UUID `db:"team2_b"`

	Score1 *int `db:"score1"`
	Score2 *int `db:"score2"`

	CreatedAt time.Time `db:"created_at"`
}

// PlayerIDs returns the four participants in team order.
func (m *Match) PlayerIDs() [4]uuid.UUID {
	return [4]uuid.UUID{m.Team1A, m.Team1B, m.Team2A, m.Team2B}
}

// TeamOf returns 1 or 2 when the two ids form that team in either order,
// 0 when they do not play together in this match.
func (m *Match) TeamOf(a, b uuid.UUID) int {
	switch {
	case pairEqual(m.Team1A, m.Team1B, a, b):
		return 1
	case pairEqual(m.Team2A, m.Team2B, a, b):
		return 2
	default:
		return 0
	}
}

func pairEqual(x, y, a, b uuid.UUID) bool {
	return (x == a && y == b) || (x == b && y == a)
}

// HasScore reports whether both sides have a recorded value, valid or not.
func (m *Match) HasScore() bool {
	return m.Score1 != nil && m.Score2 != nil
}

// ScoreValid reports whether the recorded score counts toward statistics.
func (m *Match) ScoreValid() bool {
	return m.HasScore() && *m.Score1+*m.Score2 == MatchPoints
}

// WithScore returns a copy of the match with the given side set to value and
// the opposite side filled with the remainder to MatchPoints. Both sides are
// clamped to [0, MatchPoints] independently, so a single out-of-range edit
// still lands on a score that sums to MatchPoints.
func (m Match) WithScore(side, value int) (Match, error) {
	own := clampScore(value)
	other := clampScore(MatchPoints - value)
	switch side {
	case 1:
		m.Score1, m.Score2 = &own, &other
	case 2:
		m.Score2, m.Score1 = &own, &other
	default:
		return m, fmt.Errorf("invalid score side %d, want 1 or 2", side)
	}
	return m, nil
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > MatchPoints {
		return MatchPoints
	}
	return v
}
