package engine

import (
	"github.com/begreatfulforreal/ponzimon-program/catalog"
	"github.com/begreatfulforreal/ponzimon-program/types"
)

// UpgradeFacility moves the participant to the next facility tier. Tiers
// are strictly ascending, one step at a time; downgrades and skips are
// both rejected. The upgrade cooldown runs from the last upgrade, and the
// cost is paid with the same burn split as a miner purchase.
func (e *Engine) UpgradeFacility(caller string, now uint64, nextTier uint8) error {
	if err := e.requireInitialized(); err != nil {
		return err
	}
	if !e.pool.ProductionEnabled {
		return types.ErrProductionDisabled
	}
	p, err := e.store.GetParticipant(caller)
	if err != nil {
		return err
	}
	if nextTier != p.Facility.FacilityType+1 || nextTier > catalog.MaxFacilityTier() {
		return types.ErrInvalidFacilityType
	}
	tier, err := catalog.Facility(nextTier)
	if err != nil {
		return err
	}
	if now < p.LastUpgradeTime+e.pool.CooldownTicks {
		return types.ErrCooldownNotExpired
	}

	u := computePoolUpdate(e.pool, now)
	s := computeSettlement(u, e.pool, p, false)
	if e.ledger.BalanceOf(caller)+s.net < tier.Cost {
		return types.ErrInsufficientBits
	}

	e.applyPoolUpdate(u)
	if err := e.applySettlement(u, s, p); err != nil {
		return err
	}
	if err := e.spendWithBurn(caller, tier.Cost); err != nil {
		return err
	}

	p.Facility = types.Facility{
		FacilityType:       nextTier,
		TotalMinerCapacity: tier.MinerCapacity,
		PowerOutput:        tier.PowerOutput,
	}
	p.LastUpgradeTime = now

	if err := e.persist(p); err != nil {
		return err
	}
	e.emit(types.EventFacilityUpgraded, now, caller, tier.Cost)
	return nil
}
