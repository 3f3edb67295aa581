package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mvidaller/padel-league/internal/padel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRosterNames = []string{
	"Daniel", "Macho",
	"Ana", "Bea", "Carlos", "Elena", "Fran", "Gema", "Hugo", "Irene", "Jorge", "Lucia",
}

func testRoster(t *testing.T) []padel.Player {
	t.Helper()
	players := make([]padel.Player, len(testRosterNames))
	for i, name := range testRosterNames {
		players[i] = padel.Player{ID: uuid.New(), Name: name, Slot: i + 1}
	}
	return players
}

func TestGenerateScheduleShape(t *testing.T) {
	players := testRoster(t)

	matches, err := GenerateSchedule(players, 42)
	require.NoError(t, err)
	require.Len(t, matches, padel.RoundCount*3)

	courts := []int{padel.DuoCourt, padel.SecondCourt, padel.ThirdCourt}
	for i, m := range matches {
		assert.Equal(t, i/3+1, m.RoundNumber, "matches ordered by round")
		assert.Equal(t, courts[i%3], m.Court, "courts ordered within a round")
		assert.Equal(t, uuid.Nil, m.ID, "ids are stamped at persistence, not here")
		assert.Nil(t, m.Score1)
		assert.Nil(t, m.Score2)
	}
}

func TestGenerateScheduleDeterminism(t *testing.T) {
	players := testRoster(t)

	first, err := GenerateSchedule(players, 42)
	require.NoError(t, err)

	second, err := GenerateSchedule(players, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same roster and seed give the same schedule")

	other, err := GenerateSchedule(players, 43)
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "a different seed reshuffles the side courts")
}

func TestGenerateScheduleRoundCoverage(t *testing.T) {
	players := testRoster(t)

	matches, err := GenerateSchedule(players, 7)
	require.NoError(t, err)

	for round := 1; round <= padel.RoundCount; round++ {
		seen := make(map[uuid.UUID]int)
		for _, m := range matches {
			if m.RoundNumber != round {
				continue
			}
			for _, id := range m.PlayerIDs() {
				seen[id]++
			}
		}

		require.Len(t, seen, padel.PlayerCount, "round %d", round)
		for _, p := range players {
			assert.Equal(t, 1, seen[p.ID], "%s in round %d", p.Name, round)
		}
	}
}

func TestGenerateScheduleDuoBalance(t *testing.T) {
	players := testRoster(t)
	daniel, macho := players[0], players[1]

	matches, err := GenerateSchedule(players, 99)
	require.NoError(t, err)

	meetings := make(map[uuid.UUID]int)
	pairs := make(map[pairKey]int)

	for _, m := range matches {
		if m.Court != padel.DuoCourt {
			assert.Equal(t, 0, m.TeamOf(daniel.ID, macho.ID), "duo only ever plays court 7")
			continue
		}

		assert.Equal(t, daniel.ID, m.Team1A)
		assert.Equal(t, macho.ID, m.Team1B)

		meetings[m.Team2A]++
		meetings[m.Team2B]++
		pairs[newPairKey(m.Team2A, m.Team2B)]++
	}

	require.Len(t, meetings, padel.PlayerCount-2)
	for _, p := range players[2:] {
		assert.Equal(t, duoMeetings, meetings[p.ID], "%s faces the duo", p.Name)
	}

	assert.Len(t, pairs, padel.RoundCount, "no opposing pair repeats")
	for pair, n := range pairs {
		assert.Equal(t, 1, n, "pair %v", pair)
	}
}

func TestGenerateScheduleManySeeds(t *testing.T) {
	players := testRoster(t)

	for seed := int64(0); seed < 25; seed++ {
		matches, err := GenerateSchedule(players, seed)
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, matches, padel.RoundCount*3, "seed %d", seed)
	}
}

func TestGenerateScheduleValidation(t *testing.T) {
	buildRoster := func(names []string) []padel.Player {
		players := make([]padel.Player, len(names))
		for i, name := range names {
			players[i] = padel.Player{ID: uuid.New(), Name: name, Slot: i + 1}
		}
		return players
	}
	fill := func(first ...string) []string {
		names := first
		for i := len(names); i < padel.PlayerCount; i++ {
			names = append(names, fmt.Sprintf("Player %d", i+1))
		}
		return names
	}

	testCases := []struct {
		name        string
		rosterNames []string
		expectedErr error
	}{
		{
			name:        "eleven players",
			rosterNames: fill("Daniel", "Macho")[:11],
			expectedErr: padel.ErrPlayerCount,
		},
		{
			name:        "thirteen players",
			rosterNames: append(fill("Daniel", "Macho"), "Extra"),
			expectedErr: padel.ErrPlayerCount,
		},
		{
			name:        "no reserved names",
			rosterNames: fill(),
			expectedErr: padel.ErrDuoPlayers,
		},
		{
			name:        "only one half of the pair",
			rosterNames: fill("Macho"),
			expectedErr: padel.ErrDuoPlayers,
		},
		{
			name:        "reserved name duplicated",
			rosterNames: fill("Daniel", "Macho", "daniel"),
			expectedErr: padel.ErrDuoPlayers,
		},
		{
			name:        "same reserved name twice without the other",
			rosterNames: fill("Macho", "macho"),
			expectedErr: padel.ErrDuoPlayers,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			matches, err := GenerateSchedule(buildRoster(tc.rosterNames), 42)
			assert.Nil(t, matches)
			assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
		})
	}
}

func TestDuoOpponentPlanBalances(t *testing.T) {
	players := testRoster(t)
	_, rest, err := padel.SplitDuo(players)
	require.NoError(t, err)

	plan, err := duoOpponentPlan(rest)
	require.NoError(t, err)
	require.Len(t, plan, padel.RoundCount)

	counts := make(map[uuid.UUID]int)
	seen := make(map[pairKey]bool)
	for _, pair := range plan {
		require.NotEqual(t, pair[0], pair[1])
		key := newPairKey(pair[0], pair[1])
		assert.False(t, seen[key], "pair scheduled twice")
		seen[key] = true
		counts[pair[0]]++
		counts[pair[1]]++
	}

	for _, p := range rest {
		assert.Equal(t, duoMeetings, counts[p.ID], p.Name)
	}
}
