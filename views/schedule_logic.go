package views

import (
	"sort"

	"github.com/google/uuid"
	"github.com/mvidaller/padel-league/internal/padel"
)

type ScheduleData struct {
	Rounds    map[int][]padel.Match
	RoundNums []int
	PlayerMap map[uuid.UUID]padel.Player
}

func PrepareScheduleData(players []padel.Player, matches []padel.Match) ScheduleData {
	playerMap := make(map[uuid.UUID]padel.Player)
	for _, p := range players {
		playerMap[p.ID] = p
	}

	rounds := make(map[int][]padel.Match)
	var roundNums []int

	for _, m := range matches {
		if _, exists := rounds[m.RoundNumber]; !exists {
			roundNums = append(roundNums, m.RoundNumber)
		}
		rounds[m.RoundNumber] = append(rounds[m.RoundNumber], m)
	}

	sort.Ints(roundNums)
	sortRounds(rounds, roundNums)

	return ScheduleData{
		Rounds:    rounds,
		RoundNums: roundNums,
		PlayerMap: playerMap,
	}
}

func sortRounds(rounds map[int][]padel.Match, roundNums []int) {
	for _, r := range roundNums {
		sort.Slice(rounds[r], func(i, j int) bool {
			return rounds[r][i].Court < rounds[r][j].Court
		})
	}
}

func (d ScheduleData) TeamLabel(a, b uuid.UUID) string {
	return d.PlayerMap[a].Name + " & " + d.PlayerMap[b].Name
}
