package padel

import "github.com/google/uuid"

// StandingRow is one player's aggregate over every valid-scored match.
// Rows are recomputed from the schedule on demand, never stored.
type StandingRow struct {
	PlayerID      uuid.UUID
	Name          string
	Played        int
	Won           int
	Tied          int
	Lost          int
	PointsFor     int
	PointsAgainst int
	Diff          int
}

// DuoSummary aggregates the pair's own court results.
type DuoSummary struct {
	Played        int
	Won           int
	Tied          int
	Lost          int
	PointsFor     int
	AveragePoints float64
}

// DuoGameEntry is one line of the pair's game log, scored matches only.
type DuoGameEntry struct {
	RoundNumber int
	Opponents   string
	Score       string
	Result      string
}
