package types

// ParameterUpdate carries the admin-settable economic parameters. A nil
// field means "leave unchanged"; sentinel values are never used.
type ParameterUpdate struct {
	ReferralFeePermille  *uint16
	BurnRatePercent      *uint8
	CooldownTicks        *uint64
	HalvingInterval      *uint64
	DustThresholdDivisor *uint64
}

// InitializeParams seeds the pool at program initialization. CooldownTicks
// is optional; absent means the default onboarding cooldown.
type InitializeParams struct {
	Authority  string
	TokenMint  string
	FeesWallet string

	StartTick         uint64
	HalvingInterval   uint64
	TotalSupply       uint64
	InitialRewardRate uint64
	CooldownTicks     *uint64
}
