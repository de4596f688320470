package fair

// CalculateLPTokens converts a deposit of underlying value into LP shares.
// The first depositor sets the 1:1 baseline; after that shares are minted
// proportionally: floor(deposit * lpSupply / poolLiquidity).
func CalculateLPTokens(deposit, poolLiquidity, lpSupply uint64) (uint64, error) {
	if poolLiquidity == 0 || lpSupply == 0 {
		return deposit, nil
	}
	return MulDiv(deposit, lpSupply, poolLiquidity)
}

// CalculateWithdrawAmount converts burned LP shares back into underlying
// value: floor(lpTokens * poolLiquidity / lpSupply). Returns 0 when there is
// no supply to redeem against. The withdrawal fee is applied by the caller
// after this conversion and stays in the pool.
func CalculateWithdrawAmount(lpTokens, poolLiquidity, lpSupply uint64) (uint64, error) {
	if lpSupply == 0 {
		return 0, nil
	}
	return MulDiv(lpTokens, poolLiquidity, lpSupply)
}
