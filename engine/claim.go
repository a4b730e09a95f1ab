package engine

import (
	"github.com/begreatfulforreal/ponzimon-program/types"
)

// ClaimRewards settles the caller's pending accrual and mints it out,
// gated by the claim cooldown. A referral slice is carved out only when
// the caller's referrer is set and referrerDest names that referrer;
// otherwise the full accrual goes to the caller. Returns the net amount
// minted to the caller.
func (e *Engine) ClaimRewards(caller string, now uint64, referrerDest *string) (uint64, error) {
	if err := e.requireInitialized(); err != nil {
		return 0, err
	}
	p, err := e.store.GetParticipant(caller)
	if err != nil {
		return 0, err
	}
	if now < p.LastClaimTime+e.pool.CooldownTicks {
		return 0, types.ErrCooldownNotExpired
	}

	u := computePoolUpdate(e.pool, now)
	payReferral := p.Referrer != nil && referrerDest != nil && *referrerDest == *p.Referrer
	s := computeSettlement(u, e.pool, p, payReferral)

	e.applyPoolUpdate(u)
	if err := e.applySettlement(u, s, p); err != nil {
		return 0, err
	}
	p.LastClaimTime = now

	if err := e.persist(p); err != nil {
		return 0, err
	}
	e.emit(types.EventRewardsClaimed, now, caller, s.net)
	return s.net, nil
}
