package stats_repo

import (
	"sync"

	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository"
)

// repo keeps protocol-wide counters in memory. Counters reset on restart,
// which is acceptable for reporting.
type repo struct {
	mu    sync.RWMutex
	stats model.ProtocolStats
}

func NewStatsRepository() repository.StatsRepository {
	return &repo{}
}

func (r *repo) RecordSettlement(wager, payout uint64, jackpotWon bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.RoundsSettled++
	r.stats.TotalWagered += wager
	r.stats.TotalPaidOut += payout
	if jackpotWon {
		r.stats.JackpotsHit++
	}
}

func (r *repo) RecordPoolChange(action model.PoolAction, amount uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch action {
	case model.PoolActionDeposit:
		r.stats.TotalDeposited += amount
	case model.PoolActionWithdraw:
		r.stats.TotalWithdrawn += amount
	}
}

func (r *repo) Snapshot() model.ProtocolStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stats
}
