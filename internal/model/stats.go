package model

// ProtocolStats is a point-in-time snapshot of process-wide counters,
// maintained for reporting only.
type ProtocolStats struct {
	RoundsSettled  uint64
	TotalWagered   uint64
	TotalPaidOut   uint64
	JackpotsHit    uint64
	TotalDeposited uint64
	TotalWithdrawn uint64
}
