package fair

import "wagerpool_backend/internal/gameerr"

// JackpotProbabilityUbps derives the round's jackpot trigger threshold in
// micro basis points. The base probability is scaled by the wager's share of
// pool liquidity, never below the base and never above UbpsDivisor.
func JackpotProbabilityUbps(baseUbps, wager, poolLiquidity uint64) uint64 {
	if baseUbps == 0 {
		return 0
	}

	var wagerRatioBps uint64
	if poolLiquidity > 0 {
		r, err := MulDiv(wager, BPSPerWhole, poolLiquidity)
		if err == nil {
			wagerRatioBps = r
		}
	}

	probability := baseUbps
	if wagerRatioBps > 0 {
		scaled, err := MulDiv(baseUbps, wagerRatioBps, 1)
		if err == nil && scaled > probability {
			probability = scaled
		}
	}
	if probability > UbpsDivisor {
		probability = UbpsDivisor
	}
	return probability
}

// JackpotWon reports whether the jackpot draw lands under the threshold.
func JackpotWon(digest string, probabilityUbps uint64) (bool, error) {
	draw, err := JackpotDraw(digest)
	if err != nil {
		return false, err
	}
	return draw < probabilityUbps, nil
}

// JackpotSplit is the distribution of a triggered jackpot, in basis points
// summing to 10000.
type JackpotSplit struct {
	ToUserBps     uint64 `yaml:"to_user_bps"`
	ToCreatorBps  uint64 `yaml:"to_creator_bps"`
	ToPoolBps     uint64 `yaml:"to_pool_bps"`
	ToProtocolBps uint64 `yaml:"to_protocol_bps"`
}

// Validate checks the split sums to exactly 10000 bps.
func (s JackpotSplit) Validate() error {
	if s.ToUserBps+s.ToCreatorBps+s.ToPoolBps+s.ToProtocolBps != BPSPerWhole {
		return gameerr.ErrFeeOutOfBounds
	}
	return nil
}

// JackpotPayout is a jackpot balance divided between its recipients. The
// floor-division residue stays in the jackpot balance: no value is created
// or destroyed.
type JackpotPayout struct {
	ToUser     uint64
	ToCreator  uint64
	ToPool     uint64
	ToProtocol uint64
	Residue    uint64
}

// SplitJackpot distributes balance according to split.
func SplitJackpot(balance uint64, split JackpotSplit) (JackpotPayout, error) {
	if err := split.Validate(); err != nil {
		return JackpotPayout{}, err
	}

	var p JackpotPayout
	var err error
	if p.ToUser, err = Fee(balance, split.ToUserBps); err != nil {
		return JackpotPayout{}, err
	}
	if p.ToCreator, err = Fee(balance, split.ToCreatorBps); err != nil {
		return JackpotPayout{}, err
	}
	if p.ToPool, err = Fee(balance, split.ToPoolBps); err != nil {
		return JackpotPayout{}, err
	}
	if p.ToProtocol, err = Fee(balance, split.ToProtocolBps); err != nil {
		return JackpotPayout{}, err
	}
	p.Residue = balance - p.ToUser - p.ToCreator - p.ToPool - p.ToProtocol
	return p, nil
}
