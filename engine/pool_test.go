package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/begreatfulforreal/ponzimon-program/amount"
	"github.com/begreatfulforreal/ponzimon-program/types"
)

func referencePool() *types.GlobalPool {
	return &types.GlobalPool{
		TotalSupply:          testSupply,
		StartTime:            startTick,
		HalvingInterval:      testInterval,
		InitialRewardRate:    testRate,
		CurrentRewardRate:    testRate,
		LastRewardTime:       startTick,
		DustThresholdDivisor: 1000,
		ReferralFeePermille:  25,
	}
}

func TestPoolUpdateNoStake(t *testing.T) {
	p := referencePool()
	u := computePoolUpdate(p, startTick+50_000)

	// Only the reward clock moves: nothing accrues for an empty interval.
	require.Equal(t, startTick+50_000, u.lastRewardTime)
	require.True(t, u.accRewardPerHash.IsZero())
	require.Equal(t, uint64(0), u.cumulativeRewards)
	require.Equal(t, testRate, u.currentRewardRate)
}

func TestPoolUpdateTimeStandsStill(t *testing.T) {
	p := referencePool()
	p.TotalHashpower = 1500
	p.LastRewardTime = startTick + 10

	for _, now := range []uint64{startTick, startTick + 10} {
		u := computePoolUpdate(p, now)
		require.Equal(t, p.LastRewardTime, u.lastRewardTime)
		require.True(t, u.accRewardPerHash.IsZero())
		require.Equal(t, uint64(0), u.cumulativeRewards)
	}
}

func TestPoolUpdateSingleStakerAccrual(t *testing.T) {
	p := referencePool()
	p.TotalHashpower = 1500

	elapsed := uint64(108_000)
	u := computePoolUpdate(p, startTick+elapsed)

	reward := elapsed * testRate // 375_000_192_000
	require.Equal(t, reward, u.cumulativeRewards)
	require.Equal(t, testRate, u.currentRewardRate)
	require.Equal(t, uint64(0), u.lastProcessedHalvings)

	want := amount.U128From64(reward).Mul64(amount.AccScale).Div64(1500)
	require.Equal(t, want, u.accRewardPerHash)

	// Pricing the accumulator back into tokens loses nothing here.
	back := u.accRewardPerHash.Mul64(1500).Div64(amount.AccScale).Sat64()
	require.Equal(t, reward, back)
}

func TestPoolUpdateHalvingDropsRate(t *testing.T) {
	p := referencePool()
	p.TotalHashpower = 1500

	u := computePoolUpdate(p, startTick+testInterval)
	require.Equal(t, uint64(1), u.lastProcessedHalvings)
	require.Equal(t, testRate>>1, u.currentRewardRate)

	// The whole elapsed span is priced at the final rate: a known discrete
	// jump at the boundary rather than per-segment pricing.
	require.Equal(t, testInterval*(testRate>>1), u.cumulativeRewards)
}

func TestPoolUpdateConsecutiveHalvings(t *testing.T) {
	p := referencePool()
	p.TotalHashpower = 1500

	prevRate := p.CurrentRewardRate
	prevHalvings := uint64(0)
	for i := uint64(1); i <= 5; i++ {
		u := computePoolUpdate(p, startTick+i*testInterval)
		require.Equal(t, prevHalvings+1, u.lastProcessedHalvings)
		require.Equal(t, prevRate/2, u.currentRewardRate)

		p.LastRewardTime = u.lastRewardTime
		p.LastProcessedHalvings = u.lastProcessedHalvings
		p.CurrentRewardRate = u.currentRewardRate
		p.AccRewardPerHash = u.accRewardPerHash
		p.CumulativeRewards = u.cumulativeRewards
		prevRate = u.currentRewardRate
		prevHalvings = u.lastProcessedHalvings
	}
}

func TestPoolUpdateRatePinsAtZeroPastSchedule(t *testing.T) {
	p := referencePool()
	p.TotalHashpower = 1500
	p.DustThresholdDivisor = 0

	u := computePoolUpdate(p, startTick+100*testInterval)
	require.Equal(t, uint64(22), u.lastProcessedHalvings)
	require.Equal(t, uint64(0), u.currentRewardRate)
	require.Equal(t, uint64(0), u.cumulativeRewards)
}

func TestPoolUpdateSupplyClamp(t *testing.T) {
	p := referencePool()
	p.TotalHashpower = 1500
	p.TotalSupply = 1_000000
	p.DustThresholdDivisor = 0

	// Far more would accrue at the nominal rate; emission stops at the cap.
	u := computePoolUpdate(p, startTick+1_000_000)
	require.Equal(t, uint64(1_000000), u.cumulativeRewards)

	applied := referencePool()
	applied.TotalHashpower = 1500
	applied.TotalSupply = 1_000000
	applied.DustThresholdDivisor = 0
	applied.CumulativeRewards = u.cumulativeRewards
	applied.LastRewardTime = startTick + 1_000_000
	require.Equal(t, uint64(0), applied.RemainingSupply())

	// Exhausted supply: nothing further accrues.
	next := computePoolUpdate(applied, startTick+2_000_000)
	require.Equal(t, uint64(1_000000), next.cumulativeRewards)
	require.Equal(t, applied.AccRewardPerHash, next.accRewardPerHash)
}

func TestPoolUpdateDustThresholdStopsEmission(t *testing.T) {
	p := referencePool()
	p.TotalHashpower = 1500
	p.TotalSupply = 1_000000
	p.DustThresholdDivisor = 1000
	p.CumulativeRewards = 999_500 // remaining 500 < dust threshold 1000

	u := computePoolUpdate(p, startTick+10_000)
	require.Equal(t, uint64(0), u.currentRewardRate)
	require.Equal(t, uint64(999_500), u.cumulativeRewards)
	require.True(t, u.accRewardPerHash.IsZero())
}

func TestSettlementConservation(t *testing.T) {
	pool := referencePool()
	pool.TotalHashpower = 3000
	ref := "bob"
	p := &types.Participant{Owner: "alice", Hashpower: 1500, Referrer: &ref}

	u := computePoolUpdate(pool, startTick+108_000)
	s := computeSettlement(u, pool, p, true)

	require.Equal(t, s.pending, s.net+s.referral)
	require.Equal(t, amount.MulDiv(s.pending, 25, 1000), s.referral)
	require.Greater(t, s.net, uint64(0))

	// Without a referrer destination the whole accrual stays put.
	folded := computeSettlement(u, pool, p, false)
	require.Equal(t, folded.pending, folded.net)
	require.Equal(t, uint64(0), folded.referral)
	require.Equal(t, s.pending, folded.pending)
}

func TestSettlementClampsToRemainingSupply(t *testing.T) {
	// 50_000 accrued to the participant but only 10_000 of headroom left
	// under the cap: the payout clamps.
	pool := referencePool()
	pool.TotalHashpower = 1
	pool.TotalSupply = 100_000
	pool.CumulativeRewards = 90_000
	pool.AccRewardPerHash = amount.U128From64(50_000).Mul64(amount.AccScale)
	p := &types.Participant{Owner: "alice", Hashpower: 1}

	u := computePoolUpdate(pool, pool.LastRewardTime)
	s := computeSettlement(u, pool, p, false)
	require.Equal(t, uint64(10_000), s.pending)
	require.Equal(t, uint64(10_000), s.net)
}

func TestSettlementZeroDelta(t *testing.T) {
	pool := referencePool()
	pool.TotalHashpower = 1500
	p := &types.Participant{Owner: "alice", Hashpower: 1500}

	u := computePoolUpdate(pool, startTick)
	s := computeSettlement(u, pool, p, false)
	require.Equal(t, uint64(0), s.pending)
	require.Equal(t, uint64(0), s.net)
}
