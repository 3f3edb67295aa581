package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mvidaller/padel-league/internal/padel"
)

// WriteScheduleCSV writes the schedule as one row per match, in schedule
// order. The score column is empty until a match has a recorded score.
func WriteScheduleCSV(w io.Writer, players []padel.Player, matches []padel.Match) error {
	names := padel.PlayerNames(players)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"round", "court", "team1", "team2", "score"}); err != nil {
		return err
	}

	for _, m := range matches {
		score := ""
		if m.HasScore() {
			score = fmt.Sprintf("%d-%d", *m.Score1, *m.Score2)
		}
		record := []string{
			strconv.Itoa(m.RoundNumber),
			strconv.Itoa(m.Court),
			names[m.Team1A] + " & " + names[m.Team1B],
			names[m.Team2A] + " & " + names[m.Team2B],
			score,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
