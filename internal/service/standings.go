package service

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/mvidaller/padel-league/internal/padel"
)

// ComputeStandings folds every valid-scored match into per-player rows.
// Matches without a score, or with a total other than padel.MatchPoints, are
// skipped entirely, so partially entered rounds coexist with live standings.
func ComputeStandings(players []padel.Player, matches []padel.Match) []padel.StandingRow {
	rows := make(map[uuid.UUID]*padel.StandingRow, len(players))
	for _, p := range players {
		rows[p.ID] = &padel.StandingRow{PlayerID: p.ID, Name: p.Name}
	}

	for _, m := range matches {
		if !m.ScoreValid() {
			continue
		}
		creditTeam(rows, m.Team1A, m.Team1B, *m.Score1, *m.Score2)
		creditTeam(rows, m.Team2A, m.Team2B, *m.Score2, *m.Score1)
	}

	out := make([]padel.StandingRow, 0, len(players))
	for _, p := range players {
		row := rows[p.ID]
		row.Diff = row.PointsFor - row.PointsAgainst
		out = append(out, *row)
	}

	slices.SortFunc(out, func(a, b padel.StandingRow) int {
		if c := cmp.Compare(b.PointsFor, a.PointsFor); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Won, a.Won); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Diff, a.Diff); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

func creditTeam(rows map[uuid.UUID]*padel.StandingRow, a, b uuid.UUID, own, against int) {
	for _, id := range [2]uuid.UUID{a, b} {
		row, ok := rows[id]
		if !ok {
			continue
		}
		row.Played++
		switch {
		case own > against:
			row.Won++
		case own < against:
			row.Lost++
		default:
			row.Tied++
		}
		row.PointsFor += own
		row.PointsAgainst += against
	}
}

// DuoSummary aggregates the pair's matches from their side of the net.
func DuoSummary(matches []padel.Match, duo [2]uuid.UUID) padel.DuoSummary {
	var s padel.DuoSummary
	for _, m := range matches {
		own, against, ok := duoScore(&m, duo)
		if !ok {
			continue
		}
		s.Played++
		switch {
		case own > against:
			s.Won++
		case own < against:
			s.Lost++
		default:
			s.Tied++
		}
		s.PointsFor += own
	}
	if s.Played > 0 {
		s.AveragePoints = float64(s.PointsFor) / float64(s.Played)
	}
	return s
}

// DuoGameLog lists the pair's scored matches in schedule order.
func DuoGameLog(players []padel.Player, matches []padel.Match, duo [2]uuid.UUID) []padel.DuoGameEntry {
	names := padel.PlayerNames(players)

	var log []padel.DuoGameEntry
	for _, m := range matches {
		own, against, ok := duoScore(&m, duo)
		if !ok {
			continue
		}

		oppA, oppB := m.Team2A, m.Team2B
		if m.TeamOf(duo[0], duo[1]) == 2 {
			oppA, oppB = m.Team1A, m.Team1B
		}

		result := "T"
		switch {
		case own > against:
			result = "W"
		case own < against:
			result = "L"
		}

		log = append(log, padel.DuoGameEntry{
			RoundNumber: m.RoundNumber,
			Opponents:   names[oppA] + " & " + names[oppB],
			Score:       fmt.Sprintf("%d-%d", own, against),
			Result:      result,
		})
	}
	return log
}

// duoScore returns the pair's own and conceded points for a match, with
// ok false when the pair did not play it or the score does not count.
func duoScore(m *padel.Match, duo [2]uuid.UUID) (own, against int, ok bool) {
	team := m.TeamOf(duo[0], duo[1])
	if team == 0 || !m.ScoreValid() {
		return 0, 0, false
	}
	own, against = *m.Score1, *m.Score2
	if team == 2 {
		own, against = against, own
	}
	return own, against, true
}
