package fair

import "wagerpool_backend/internal/gameerr"

// Fees is a wager decomposed into its fee components and the net wager the
// resolver pays out against. Locked into the game record at round open.
type Fees struct {
	Creator  uint64
	Protocol uint64
	Pool     uint64
	Jackpot  uint64
	Total    uint64
	NetWager uint64
}

// Fee returns floor(amount * bps / 10000).
func Fee(amount, bps uint64) (uint64, error) {
	return MulDiv(amount, bps, BPSPerWhole)
}

// CalculateFees decomposes a wager given the four fee rates in basis points.
// The combined rates must leave a positive net wager.
func CalculateFees(wager, creatorBps, protocolBps, poolBps, jackpotBps uint64) (Fees, error) {
	if creatorBps+protocolBps+poolBps+jackpotBps >= BPSPerWhole {
		return Fees{}, gameerr.ErrFeeOutOfBounds
	}

	var f Fees
	var err error
	if f.Creator, err = Fee(wager, creatorBps); err != nil {
		return Fees{}, err
	}
	if f.Protocol, err = Fee(wager, protocolBps); err != nil {
		return Fees{}, err
	}
	if f.Pool, err = Fee(wager, poolBps); err != nil {
		return Fees{}, err
	}
	if f.Jackpot, err = Fee(wager, jackpotBps); err != nil {
		return Fees{}, err
	}

	f.Total = f.Creator + f.Protocol + f.Pool + f.Jackpot
	f.NetWager, err = SubChecked(wager, f.Total)
	if err != nil {
		return Fees{}, err
	}
	return f, nil
}
