package engine

import (
	"log"

	"github.com/begreatfulforreal/ponzimon-program/amount"
	"github.com/begreatfulforreal/ponzimon-program/emission"
	"github.com/begreatfulforreal/ponzimon-program/types"
)

// poolUpdate is the computed advance of the pool aggregate from its last
// reward tick to now. Computing it is side-effect free; an instruction
// applies it only after every other precondition has passed.
type poolUpdate struct {
	lastRewardTime        uint64
	lastProcessedHalvings uint64
	currentRewardRate     uint64
	accRewardPerHash      amount.Uint128
	cumulativeRewards     uint64
}

// computePoolUpdate advances the emission accounting to now.
//
// With no staked hashpower, or with time standing still, only the reward
// clock moves: no tokens accrue for an empty interval. Once the remaining
// supply falls to the dust threshold the rate drops to zero for good.
func computePoolUpdate(p *types.GlobalPool, now uint64) poolUpdate {
	u := poolUpdate{
		lastRewardTime:        p.LastRewardTime,
		lastProcessedHalvings: p.LastProcessedHalvings,
		currentRewardRate:     p.CurrentRewardRate,
		accRewardPerHash:      p.AccRewardPerHash,
		cumulativeRewards:     p.CumulativeRewards,
	}
	if now <= p.LastRewardTime {
		return u
	}
	u.lastRewardTime = now
	if p.TotalHashpower == 0 {
		return u
	}

	halvings, rate := emission.RatesAt(now, p.StartTime, p.HalvingInterval, p.InitialRewardRate)
	remaining := p.RemainingSupply()
	if remaining <= p.DustThreshold() {
		u.currentRewardRate = 0
		return u
	}

	elapsed := now - p.LastRewardTime
	reward := amount.U128From64(elapsed).Mul64(rate)
	if reward.Cmp(amount.U128From64(remaining)) > 0 {
		reward = amount.U128From64(remaining)
	}
	u.accRewardPerHash = p.AccRewardPerHash.Add(reward.Mul64(amount.AccScale).Div64(p.TotalHashpower))
	u.cumulativeRewards = amount.SatAdd(p.CumulativeRewards, reward.Sat64())
	u.currentRewardRate = rate
	u.lastProcessedHalvings = halvings
	return u
}

// applyPoolUpdate writes a computed update into the pool.
func (e *Engine) applyPoolUpdate(u poolUpdate) {
	p := e.pool
	if u.lastProcessedHalvings > p.LastProcessedHalvings {
		log.Printf("halving advanced: %d -> %d, reward rate now %s/tick",
			p.LastProcessedHalvings, u.lastProcessedHalvings, amount.Amount(u.currentRewardRate))
	}
	p.LastRewardTime = u.lastRewardTime
	p.LastProcessedHalvings = u.lastProcessedHalvings
	p.CurrentRewardRate = u.currentRewardRate
	p.AccRewardPerHash = u.accRewardPerHash
	p.CumulativeRewards = u.cumulativeRewards
}

// settlement is the computed payout of a participant's pending rewards
// against an already-computed pool update.
type settlement struct {
	pending  uint64 // gross accrual, clamped to remaining supply
	referral uint64 // slice minted to the referrer, zero without one
	net      uint64 // pending - referral, minted to the participant
}

// computeSettlement prices the participant's accrual since their last
// snapshot at the updated accumulator. The referral slice is carved out
// only when the participant has a referrer and the caller supplied that
// referrer's destination; otherwise the whole accrual stays with the
// participant.
func computeSettlement(u poolUpdate, pool *types.GlobalPool, p *types.Participant, payReferral bool) settlement {
	delta := u.accRewardPerHash.SatSub(p.LastAccRewardPerHash)
	pending := delta.Mul64(p.Hashpower).Div64(amount.AccScale).Sat64()

	minted := amount.SatSub(u.cumulativeRewards, pool.BurnedTokens)
	remaining := amount.SatSub(pool.TotalSupply, minted)
	if pending > remaining {
		pending = remaining
	}

	s := settlement{pending: pending, net: pending}
	if payReferral && p.Referrer != nil {
		s.referral = amount.MulDiv(pending, uint64(pool.ReferralFeePermille), 1000)
		s.net = pending - s.referral
	}
	return s
}

// applySettlement mints the computed payout and moves the participant's
// accumulator snapshot forward. Referral payouts go straight to the
// referrer's balance.
func (e *Engine) applySettlement(u poolUpdate, s settlement, p *types.Participant) error {
	if s.net > 0 {
		if err := e.ledger.Mint(p.Owner, s.net); err != nil {
			return err
		}
	}
	if s.referral > 0 {
		if err := e.ledger.Mint(*p.Referrer, s.referral); err != nil {
			return err
		}
	}
	p.LastAccRewardPerHash = u.accRewardPerHash
	p.TotalRewards = amount.SatAdd(p.TotalRewards, s.net)
	return nil
}
