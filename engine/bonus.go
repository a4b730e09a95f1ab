package engine

import (
	"github.com/begreatfulforreal/ponzimon-program/amount"
	"github.com/begreatfulforreal/ponzimon-program/types"
)

// GenerateGlobalRandomReward seeds the single live bonus slot. Seeding a
// new reward before the old one is claimed overwrites it; there is no
// queue. The payout is minted outside the accumulator formula.
func (e *Engine) GenerateGlobalRandomReward(caller string, now uint64, amt, expiryTicks uint64) error {
	if err := e.requireAuthority(caller); err != nil {
		return err
	}
	e.pool.GlobalRewardCounter++
	e.pool.GlobalRandomReward = &types.GlobalRandomReward{
		RewardID:      e.pool.GlobalRewardCounter,
		Amount:        amt,
		GeneratedTick: now,
		ExpiryTick:    now + expiryTicks,
	}
	if err := e.persist(nil); err != nil {
		return err
	}
	e.emit(types.EventBonusRewardSeeded, now, caller, amt)
	return nil
}

// ClaimGlobalRandomReward pays the live bonus to the first participant to
// claim it. The claimed flag and the participant's last-claimed id
// together make each seeded reward a strict at-most-once payout. Returns
// the minted amount.
func (e *Engine) ClaimGlobalRandomReward(caller string, now uint64) (uint64, error) {
	if err := e.requireInitialized(); err != nil {
		return 0, err
	}
	p, err := e.store.GetParticipant(caller)
	if err != nil {
		return 0, err
	}
	r := e.pool.GlobalRandomReward
	if r == nil {
		return 0, types.ErrNoPendingReward
	}
	if now > r.ExpiryTick {
		return 0, types.ErrRewardExpired
	}
	if r.Claimed || p.LastClaimedGlobalRewardID == r.RewardID {
		return 0, types.ErrRewardAlreadyClaimed
	}

	if err := e.ledger.Mint(caller, r.Amount); err != nil {
		return 0, err
	}
	r.Claimed = true
	p.LastClaimedGlobalRewardID = r.RewardID
	p.TotalRewards = amount.SatAdd(p.TotalRewards, r.Amount)

	if err := e.persist(p); err != nil {
		return 0, err
	}
	e.emit(types.EventBonusRewardClaimed, now, caller, r.Amount)
	return r.Amount, nil
}
