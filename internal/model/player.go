package model

import "time"

// Player tracks the per-player nonce and cumulative stats. The nonce is
// strictly increasing, incremented exactly once per round opened.
// PendingSeedHash is the authority's commitment for the player's next round;
// it rotates only through settlement (or the initial provide call) and is
// updated with a compare-and-set so overlapping commitments cannot race.
type Player struct {
	Owner           string
	Nonce           uint64
	PendingSeedHash string

	TotalWagered uint64
	TotalWon     uint64
	GamesPlayed  uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPlayer returns a zeroed player record for owner.
func NewPlayer(owner string) *Player {
	now := time.Now().UTC()
	return &Player{
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
