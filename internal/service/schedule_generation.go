package service

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/mvidaller/padel-league/internal/padel"
)

// Every non-duo player faces the duo this many times across the league.
const duoMeetings = 3

// GenerateSchedule builds the full 15-round, 3-court schedule for a roster.
// The same roster (ids included) and seed always produce the same schedule.
// Match ids and league ids are left zero; persistence stamps them.
func GenerateSchedule(players []padel.Player, seed int64) ([]padel.Match, error) {
	duo, rest, err := padel.SplitDuo(players)
	if err != nil {
		return nil, err
	}

	plan, err := duoOpponentPlan(rest)
	if err != nil {
		return nil, err
	}

	// One generator for the whole schedule, so round N depends on the seed
	// and on every shuffle before it.
	rng := rand.New(rand.NewSource(seed))

	matches := make([]padel.Match, 0, padel.RoundCount*3)
	for round := 1; round <= padel.RoundCount; round++ {
		roundMatches := assembleRound(round, duo, plan[round-1], rest, rng)
		if err := checkRound(players, roundMatches); err != nil {
			return nil, err
		}
		matches = append(matches, roundMatches...)
	}

	return matches, nil
}

// pairKey identifies a pair of players regardless of order.
type pairKey struct {
	a, b uuid.UUID
}

func newPairKey(a, b uuid.UUID) pairKey {
	if a.String() > b.String() {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// duoOpponentPlan assigns the pair facing the duo in each round so that every
// non-duo player gets exactly duoMeetings appearances and no opposing pair
// repeats. Plain backtracking over the 15 round slots; trying the least-used
// players first keeps the search from wandering.
func duoOpponentPlan(rest []padel.Player) ([][2]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(rest))
	for i, p := range rest {
		ids[i] = p.ID
	}

	// Exact balance: 10 players times 3 meetings fills 15 slots of 2. Anything
	// else cannot come out of SplitDuo, but check before searching on it.
	if len(ids)*duoMeetings != padel.RoundCount*2 {
		return nil, fmt.Errorf("%w: %d non-duo players cannot fill %d rounds", padel.ErrPlayerCount, len(ids), padel.RoundCount)
	}

	counts := make(map[uuid.UUID]int, len(ids))
	used := make(map[pairKey]bool)
	plan := make([][2]uuid.UUID, padel.RoundCount)

	if !fillOpponentSlot(0, ids, counts, used, plan) {
		return nil, fmt.Errorf("%w: %d opponents for %d rounds", padel.ErrInfeasible, len(ids), padel.RoundCount)
	}
	return plan, nil
}

func fillOpponentSlot(slot int, ids []uuid.UUID, counts map[uuid.UUID]int, used map[pairKey]bool, plan [][2]uuid.UUID) bool {
	if slot == padel.RoundCount {
		return true
	}

	ordered := make([]uuid.UUID, len(ids))
	copy(ordered, ids)
	sort.Slice(ordered, func(i, j int) bool {
		if counts[ordered[i]] != counts[ordered[j]] {
			return counts[ordered[i]] < counts[ordered[j]]
		}
		return ordered[i].String() < ordered[j].String()
	})

	for i := 0; i < len(ordered); i++ {
		a := ordered[i]
		if counts[a] >= duoMeetings {
			continue
		}
		for j := i + 1; j < len(ordered); j++ {
			b := ordered[j]
			if counts[b] >= duoMeetings {
				continue
			}
			key := newPairKey(a, b)
			if used[key] {
				continue
			}

			counts[a]++
			counts[b]++
			used[key] = true
			plan[slot] = [2]uuid.UUID{a, b}

			if slotsRemainFeasible(slot, ids, counts) && fillOpponentSlot(slot+1, ids, counts, used, plan) {
				return true
			}

			counts[a]--
			counts[b]--
			delete(used, key)
		}
	}

	return false
}

// slotsRemainFeasible prunes branches where the outstanding appearances no
// longer fit in the remaining slots.
func slotsRemainFeasible(slot int, ids []uuid.UUID, counts map[uuid.UUID]int) bool {
	capacity := (padel.RoundCount - (slot + 1)) * 2
	need := 0
	for _, id := range ids {
		if c := counts[id]; c < duoMeetings {
			need += duoMeetings - c
		}
	}
	return need <= capacity
}

// assembleRound lays one round out on the three courts. The duo always takes
// court 7 as team 1; the eight players left over are shuffled into four
// consecutive pairs and the pairs shuffled again onto courts 8 and 9.
func assembleRound(round int, duo [2]padel.Player, opponents [2]uuid.UUID, rest []padel.Player, rng *rand.Rand) []padel.Match {
	duoMatch := padel.Match{
		RoundNumber: round,
		Court:       padel.DuoCourt,
		Team1A:      duo[0].ID,
		Team1B:      duo[1].ID,
		Team2A:      opponents[0],
		Team2B:      opponents[1],
	}

	leftover := make([]uuid.UUID, 0, len(rest)-2)
	for _, p := range rest {
		if p.ID != opponents[0] && p.ID != opponents[1] {
			leftover = append(leftover, p.ID)
		}
	}

	rng.Shuffle(len(leftover), func(i, j int) {
		leftover[i], leftover[j] = leftover[j], leftover[i]
	})

	pairs := make([][2]uuid.UUID, 0, len(leftover)/2)
	for i := 0; i+1 < len(leftover); i += 2 {
		pairs = append(pairs, [2]uuid.UUID{leftover[i], leftover[i+1]})
	}
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	return []padel.Match{
		duoMatch,
		{
			RoundNumber: round,
			Court:       padel.SecondCourt,
			Team1A:      pairs[0][0], Team1B: pairs[0][1],
			Team2A: pairs[1][0], Team2B: pairs[1][1],
		},
		{
			RoundNumber: round,
			Court:       padel.ThirdCourt,
			Team1A:      pairs[2][0], Team1B: pairs[2][1],
			Team2A: pairs[3][0], Team2B: pairs[3][1],
		},
	}
}

// checkRound verifies what assembleRound promised: four distinct players per
// match and every roster player on exactly one court.
func checkRound(players []padel.Player, matches []padel.Match) error {
	round := matches[0].RoundNumber

	seen := make(map[uuid.UUID]int, len(players))
	for _, m := range matches {
		ids := m.PlayerIDs()
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if ids[i] == ids[j] {
					return fmt.Errorf("%w: duplicate player in round %d court %d", padel.ErrRoundInvariant, round, m.Court)
				}
			}
		}
		for _, id := range ids {
			seen[id]++
		}
	}

	for _, p := range players {
		if seen[p.ID] != 1 {
			return fmt.Errorf("%w: %s plays %d matches in round %d", padel.ErrRoundInvariant, p.Name, seen[p.ID], round)
		}
	}
	if len(seen) != len(players) {
		return fmt.Errorf("%w: round %d fields %d distinct players, want %d", padel.ErrRoundInvariant, round, len(seen), len(players))
	}

	return nil
}
