package padel

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// The two reserved names that mark the fixed pair. Detection happens once,
// at schedule generation time, by trimmed case-insensitive comparison;
// renaming a player afterwards does not move the pair.
const (
	DuoName1 = "Daniel"
	DuoName2 = "Macho"
)

type Player struct {
	ID        uuid.UUID `db:"id"`
	LeagueID  uuid.UUID `db:"league_id"`
	Name      string    `db:"name"`
	Slot      int       `db:"slot"`
	IsDuo     bool      `db:"is_duo"`
	CreatedAt time.Time `db:"created_at"`
}

// IsDuoName reports whether the name belongs to the reserved pair.
func IsDuoName(name string) bool {
	name = strings.TrimSpace(name)
	return strings.EqualFold(name, DuoName1) || strings.EqualFold(name, DuoName2)
}

// SplitDuo separates the reserved pair from the rest of the roster, keeping
// input order within both halves. The roster must hold exactly PlayerCount
// players, one carrying each reserved name.
func SplitDuo(players []Player) ([2]Player, []Player, error) {
	var duo [2]Player
	if len(players) != PlayerCount {
		return duo, nil, fmt.Errorf("%w: got %d", ErrPlayerCount, len(players))
	}

	var matched []Player
	rest := make([]Player, 0, PlayerCount-2)
	for _, p := range players {
		if IsDuoName(p.Name) {
			matched = append(matched, p)
		} else {
			rest = append(rest, p)
		}
	}

	if len(matched) != 2 {
		return duo, nil, fmt.Errorf("%w: %d roster names match %s/%s, want exactly 2",
			ErrDuoPlayers, len(matched), DuoName1, DuoName2)
	}
	if strings.EqualFold(strings.TrimSpace(matched[0].Name), strings.TrimSpace(matched[1].Name)) {
		return duo, nil, fmt.Errorf("%w: both matching players are named %q", ErrDuoPlayers, matched[0].Name)
	}

	copy(duo[:], matched)
	return duo, rest, nil
}

// DuoIDs picks the two players flagged as the pair out of a stored roster.
// The boolean is false when the roster does not carry exactly two.
func DuoIDs(players []Player) ([2]uuid.UUID, bool) {
	var ids [2]uuid.UUID
	n := 0
	for _, p := range players {
		if !p.IsDuo {
			continue
		}
		if n == 2 {
			return ids, false
		}
		ids[n] = p.ID
		n++
	}
	return ids, n == 2
}

// PlayerNames indexes a roster by id for display lookups.
func PlayerNames(players []Player) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	return names
}
