package padel

import "errors"

// The failure kinds schedule generation can surface. Call sites wrap these
// with detail; callers branch with errors.Is.
var (
	// ErrPlayerCount reports a roster without exactly PlayerCount players.
	ErrPlayerCount = errors.New("league needs exactly 12 players")

	// ErrDuoPlayers reports that the reserved pair could not be identified
	// unambiguously from the roster names.
	ErrDuoPlayers = errors.New("could not identify the duo")

	// ErrInfeasible reports that the opponent balancing search exhausted its
	// space without a full assignment.
	ErrInfeasible = errors.New("no balanced opponent assignment exists for this roster")

	// ErrRoundInvariant reports an assembled round that failed self-checks.
	// This is a generator defect, never bad input.
	ErrRoundInvariant = errors.New("round failed schedule invariants")
)
