package fair

import "wagerpool_backend/internal/gameerr"

// ResultIndex maps the digest's primary draw onto an outcome index by
// walking the cumulative weights in order. The first index whose cumulative
// sum exceeds the draw wins.
func ResultIndex(digest string, weights []uint32) (int, error) {
	total := TotalWeight(weights)
	draw, err := ResultDraw(digest, total)
	if err != nil {
		return 0, err
	}

	var cumulative uint64
	for i, w := range weights {
		cumulative += uint64(w)
		if draw < cumulative {
			return i, nil
		}
	}
	// Unreachable: draw < total and the weights sum to total.
	return 0, gameerr.ErrInvalidBetWeights
}

// Payout returns floor(netWager * multiplierBps / 10000).
func Payout(netWager, multiplierBps uint64) (uint64, error) {
	return MulDiv(netWager, multiplierBps, BPSPerWhole)
}
