package converter

import (
	"wagerpool_backend/internal/api/dto/pool"
	"wagerpool_backend/internal/model"
)

func ToCreatePool(req pool.CreatePoolRequest, authority string) model.CreatePool {
	return model.CreatePool{
		Authority:       authority,
		UnderlyingAsset: req.UnderlyingAsset,
		MinWager:        req.MinWager,
		MaxWager:        req.MaxWager,
	}
}

func ToPoolResponse(p model.Pool) pool.PoolResponse {
	return pool.PoolResponse{
		ID:              p.ID.String(),
		Authority:       p.Authority,
		UnderlyingAsset: p.UnderlyingAsset,

		LPSupply:       p.LPSupply,
		TotalLiquidity: p.TotalLiquidity,
		JackpotBalance: p.JackpotBalance,
		BonusBalance:   p.BonusBalance,

		MinWager:   p.MinWager,
		MaxWager:   p.MaxWager,
		PlaysCount: p.PlaysCount,
		IsActive:   p.IsActive,

		CreatedAt: p.CreatedAt,
	}
}

func ToPoolChangeResponse(c model.PoolChange) pool.PoolChangeResponse {
	return pool.PoolChangeResponse{
		PoolID:        c.PoolID.String(),
		Action:        string(c.Action),
		Amount:        c.Amount,
		LPAmount:      c.LPAmount,
		FeeAmount:     c.FeeAmount,
		PostLiquidity: c.PostLiquidity,
		PostLPSupply:  c.PostLPSupply,
	}
}
