package types

import "github.com/begreatfulforreal/ponzimon-program/amount"

// GlobalPool is the root aggregate: one per token mint, mutated by every
// instruction. The enclosing ledger serializes calls, so the pool always
// observes monotonically increasing ticks.
type GlobalPool struct {
	Authority  string `json:"authority"`
	TokenMint  string `json:"tokenMint"`
	FeesWallet string `json:"feesWallet"`

	// Emission mechanics.
	TotalSupply           uint64         `json:"totalSupply"`
	BurnedTokens          uint64         `json:"burnedTokens"`
	CumulativeRewards     uint64         `json:"cumulativeRewards"`
	StartTime             uint64         `json:"startTime"`
	HalvingInterval       uint64         `json:"halvingInterval"`
	LastProcessedHalvings uint64         `json:"lastProcessedHalvings"`
	InitialRewardRate     uint64         `json:"initialRewardRate"`
	CurrentRewardRate     uint64         `json:"currentRewardRate"`
	AccRewardPerHash      amount.Uint128 `json:"accRewardPerHash"`
	LastRewardTime        uint64         `json:"lastRewardTime"`

	// Economic parameters, admin-settable individually.
	BurnRatePercent      uint8  `json:"burnRatePercent"`
	ReferralFeePermille  uint16 `json:"referralFeePermille"`
	ProductionEnabled    bool   `json:"productionEnabled"`
	CooldownTicks        uint64 `json:"cooldownTicks"`
	DustThresholdDivisor uint64 `json:"dustThresholdDivisor"`

	TotalHashpower uint64 `json:"totalHashpower"`

	GlobalRandomReward  *GlobalRandomReward `json:"globalRandomReward,omitempty"`
	GlobalRewardCounter uint64              `json:"globalRewardCounter"`
}

// GlobalRandomReward is the single live admin-seeded bonus slot. Generating
// a new reward overwrites it; there is no queue.
type GlobalRandomReward struct {
	RewardID      uint64 `json:"rewardId"`
	Amount        uint64 `json:"amount"`
	GeneratedTick uint64 `json:"generatedTick"`
	ExpiryTick    uint64 `json:"expiryTick"`
	Claimed       bool   `json:"claimed"`
}

// RemainingSupply is the emission headroom left under the hard cap after
// netting burns against everything ever minted.
func (p *GlobalPool) RemainingSupply() uint64 {
	minted := amount.SatSub(p.CumulativeRewards, p.BurnedTokens)
	return amount.SatSub(p.TotalSupply, minted)
}

// DustThreshold is the remaining-supply floor below which emission stops.
// A zero divisor disables the threshold.
func (p *GlobalPool) DustThreshold() uint64 {
	if p.DustThresholdDivisor == 0 {
		return 0
	}
	return p.TotalSupply / p.DustThresholdDivisor
}

func (p *GlobalPool) Clone() *GlobalPool {
	cp := *p
	if p.GlobalRandomReward != nil {
		r := *p.GlobalRandomReward
		cp.GlobalRandomReward = &r
	}
	return &cp
}
