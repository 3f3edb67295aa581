package padel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDuoName(t *testing.T) {
	assert.True(t, IsDuoName("Daniel"))
	assert.True(t, IsDuoName("macho"))
	assert.True(t, IsDuoName("  DANIEL  "))
	assert.False(t, IsDuoName("Daniela"))
	assert.False(t, IsDuoName(""))
}

func rosterWithNames(names ...string) []Player {
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{ID: uuid.New(), Name: name, Slot: i + 1}
	}
	return players
}

func fillRoster(first ...string) []Player {
	names := first
	for i := len(names); i < PlayerCount; i++ {
		names = append(names, fmt.Sprintf("Player %d", i+1))
	}
	return rosterWithNames(names...)
}

func TestSplitDuo(t *testing.T) {
	t.Run("happy path keeps order", func(t *testing.T) {
		players := fillRoster("Ana", "Daniel", "Luis", "Macho")

		duo, rest, err := SplitDuo(players)
		require.NoError(t, err)

		assert.Equal(t, "Daniel", duo[0].Name)
		assert.Equal(t, "Macho", duo[1].Name)
		require.Len(t, rest, PlayerCount-2)
		assert.Equal(t, "Ana", rest[0].Name)
		assert.Equal(t, "Luis", rest[1].Name)
	})

	t.Run("case insensitive detection", func(t *testing.T) {
		players := fillRoster("  daniel ", "MACHO")

		duo, _, err := SplitDuo(players)
		require.NoError(t, err)
		assert.Equal(t, "  daniel ", duo[0].Name, "original spelling is preserved")
	})

	t.Run("wrong roster size", func(t *testing.T) {
		players := rosterWithNames("Daniel", "Macho", "Ana")

		_, _, err := SplitDuo(players)
		assert.True(t, errors.Is(err, ErrPlayerCount))
	})

	t.Run("missing one half of the pair", func(t *testing.T) {
		players := fillRoster("Daniel")

		_, _, err := SplitDuo(players)
		assert.True(t, errors.Is(err, ErrDuoPlayers))
	})

	t.Run("three reserved names", func(t *testing.T) {
		players := fillRoster("Daniel", "Macho", "daniel")

		_, _, err := SplitDuo(players)
		assert.True(t, errors.Is(err, ErrDuoPlayers))
	})

	t.Run("same reserved name twice", func(t *testing.T) {
		players := fillRoster("Daniel", "daniel")

		_, _, err := SplitDuo(players)
		assert.True(t, errors.Is(err, ErrDuoPlayers))
	})
}

func TestDuoIDs(t *testing.T) {
	players := fillRoster("Daniel", "Macho")
	players[0].IsDuo = true
	players[1].IsDuo = true

	ids, ok := DuoIDs(players)
	require.True(t, ok)
	assert.Equal(t, players[0].ID, ids[0])
	assert.Equal(t, players[1].ID, ids[1])

	players[1].IsDuo = false
	_, ok = DuoIDs(players)
	assert.False(t, ok, "roster with one flagged player")

	players[1].IsDuo = true
	players[2].IsDuo = true
	_, ok = DuoIDs(players)
	assert.False(t, ok, "roster with three flagged players")
}
