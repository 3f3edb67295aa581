// Package padel holds the league domain model: the fixed 12-player roster
// with its reserved duo, the 15-round court schedule and the score rules
// every derived statistic is computed from.
package padel

import (
	"time"

	"github.com/google/uuid"
)

// The league shape is fixed: twelve players play fifteen rounds on three
// courts, so every round uses the full roster exactly once.
const (
	PlayerCount = 12
	RoundCount  = 15
)

type League struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Seed      int64     `db:"seed"`
	CreatedAt time.Time `db:"created_at"`
}
