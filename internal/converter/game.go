package converter

import (
	"time"

	"github.com/google/uuid"

	"wagerpool_backend/internal/api/dto/game"
	"wagerpool_backend/internal/model"
)

func ToOpenRound(req game.OpenRoundRequest, owner string, poolID uuid.UUID) model.OpenRound {
	return model.OpenRound{
		PoolID:        poolID,
		Owner:         owner,
		Creator:       req.Creator,
		Wager:         req.Wager,
		Bet:           req.Bet,
		ClientSeed:    req.ClientSeed,
		Metadata:      req.Metadata,
		CreatorFeeBps: req.CreatorFeeBps,
		JackpotFeeBps: req.JackpotFeeBps,
	}
}

func ToGameResponse(g model.Game) game.GameResponse {
	var settledAt *time.Time
	if !g.SettledAt.IsZero() {
		t := g.SettledAt
		settledAt = &t
	}

	return game.GameResponse{
		ID:      g.ID.String(),
		Owner:   g.Owner,
		Creator: g.Creator,
		PoolID:  g.PoolID.String(),
		Nonce:   g.Nonce,
		Status:  string(g.Status),

		Wager:      g.Wager,
		Bet:        g.Bet,
		ClientSeed: g.ClientSeed,
		Metadata:   g.Metadata,

		CreatorFee:    g.CreatorFee,
		ProtocolFee:   g.ProtocolFee,
		PoolFee:       g.PoolFee,
		JackpotFee:    g.JackpotFee,
		NetWager:      g.NetWager,
		PayoutReserve: g.PayoutReserve,

		CommittedSeedHash:      g.CommittedSeedHash,
		RevealedSeed:           g.RevealedSeed,
		NextSeedHash:           g.NextSeedHash,
		JackpotProbabilityUbps: g.JackpotProbabilityUbps,

		ResultIndex:   g.ResultIndex,
		MultiplierBps: g.MultiplierBps,
		Payout:        g.Payout,
		JackpotWon:    g.JackpotWon,
		JackpotPayout: g.JackpotPayout,

		CreatedAt: g.CreatedAt,
		SettledAt: settledAt,
	}
}

func ToSettleRoundResponse(res model.SettleResult) game.SettleRoundResponse {
	return game.SettleRoundResponse{
		Game:             ToGameResponse(*res.Game),
		TotalPayout:      res.TotalPayout,
		JackpotToUser:    res.JackpotToUser,
		JackpotToCreator: res.JackpotToCreator,
		JackpotToPool:    res.JackpotToPool,
		JackpotToProto:   res.JackpotToProto,
		PoolLiquidity:    res.PoolLiquidity,
	}
}

func ToPlayerResponse(p model.Player) game.PlayerResponse {
	return game.PlayerResponse{
		Owner:           p.Owner,
		Nonce:           p.Nonce,
		PendingSeedHash: p.PendingSeedHash,
		TotalWagered:    p.TotalWagered,
		TotalWon:        p.TotalWon,
		GamesPlayed:     p.GamesPlayed,
	}
}
