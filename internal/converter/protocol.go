package converter

import (
	"wagerpool_backend/internal/api/dto/protocol"
	"wagerpool_backend/internal/model"
)

func ToConfigResponse(cfg model.ProtocolConfig) protocol.ConfigResponse {
	return protocol.ConfigResponse{
		ProtocolFeeBps:    cfg.ProtocolFeeBps,
		DefaultPoolFeeBps: cfg.DefaultPoolFeeBps,

		MaxCreatorFeeBps: cfg.MaxCreatorFeeBps,
		MaxHouseEdgeBps:  cfg.MaxHouseEdgeBps,
		MaxPayoutBps:     cfg.MaxPayoutBps,

		JackpotToUserBps:     cfg.JackpotSplit.ToUserBps,
		JackpotToCreatorBps:  cfg.JackpotSplit.ToCreatorBps,
		JackpotToPoolBps:     cfg.JackpotSplit.ToPoolBps,
		JackpotToProtocolBps: cfg.JackpotSplit.ToProtocolBps,

		BonusToJackpotRatioBps: cfg.BonusToJackpotRatioBps,
		BaseJackpotProbUbps:    cfg.BaseJackpotProbUbps,

		PoolWithdrawFeeBps: cfg.PoolWithdrawFeeBps,
		MinWager:           cfg.MinWager,

		PoolCreationAllowed: cfg.PoolCreationAllowed,
		DepositsAllowed:     cfg.DepositsAllowed,
		WithdrawalsAllowed:  cfg.WithdrawalsAllowed,
		PlayingAllowed:      cfg.PlayingAllowed,
	}
}

func ToStatsResponse(stats model.ProtocolStats) protocol.StatsResponse {
	return protocol.StatsResponse{
		RoundsSettled:  stats.RoundsSettled,
		TotalWagered:   stats.TotalWagered,
		TotalPaidOut:   stats.TotalPaidOut,
		JackpotsHit:    stats.JackpotsHit,
		TotalDeposited: stats.TotalDeposited,
		TotalWithdrawn: stats.TotalWithdrawn,
	}
}
