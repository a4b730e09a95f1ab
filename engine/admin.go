package engine

import (
	"fmt"
	"log"

	"github.com/begreatfulforreal/ponzimon-program/amount"
	"github.com/begreatfulforreal/ponzimon-program/catalog"
	"github.com/begreatfulforreal/ponzimon-program/config"
	"github.com/begreatfulforreal/ponzimon-program/types"
)

// ResetPlayer settles and pays out the target's pending accrual, then
// strips them back to the bare starter facility: equipment cleared,
// hashpower zeroed and removed from the global tally. The record itself
// survives.
func (e *Engine) ResetPlayer(caller string, now uint64, target string) error {
	if err := e.requireAuthority(caller); err != nil {
		return err
	}
	p, err := e.store.GetParticipant(target)
	if err != nil {
		return err
	}

	u := computePoolUpdate(e.pool, now)
	s := computeSettlement(u, e.pool, p, false)

	e.applyPoolUpdate(u)
	if err := e.applySettlement(u, s, p); err != nil {
		return err
	}

	e.pool.TotalHashpower = amount.SatSub(e.pool.TotalHashpower, p.Hashpower)
	p.Facility = catalog.StarterFacility()
	p.Equipment = nil
	p.Hashpower = 0
	p.LastClaimTime = now
	p.LastUpgradeTime = now

	if err := e.persist(p); err != nil {
		return err
	}
	e.emit(types.EventParticipantReset, now, target, s.net)
	return nil
}

// UpdateParameters tunes the admin-settable economics. Nil fields stay
// unchanged. Every supplied value is range-checked before any of them is
// written, so a bad argument leaves the whole set untouched.
func (e *Engine) UpdateParameters(caller string, upd types.ParameterUpdate) error {
	if err := e.requireAuthority(caller); err != nil {
		return err
	}
	if upd.ReferralFeePermille != nil && *upd.ReferralFeePermille > config.MaxReferralFeePermille {
		return fmt.Errorf("referral fee %d over limit: %w", *upd.ReferralFeePermille, types.ErrInvalidMinerType)
	}
	if upd.BurnRatePercent != nil && *upd.BurnRatePercent > config.MaxBurnRatePercent {
		return fmt.Errorf("burn rate %d over limit: %w", *upd.BurnRatePercent, types.ErrInvalidMinerType)
	}
	if upd.CooldownTicks != nil && *upd.CooldownTicks == 0 {
		return fmt.Errorf("zero cooldown: %w", types.ErrInvalidMinerType)
	}
	if upd.HalvingInterval != nil && *upd.HalvingInterval == 0 {
		return fmt.Errorf("zero halving interval: %w", types.ErrInvalidMinerType)
	}
	if upd.DustThresholdDivisor != nil && *upd.DustThresholdDivisor == 0 {
		return fmt.Errorf("zero dust divisor: %w", types.ErrInvalidMinerType)
	}

	if upd.ReferralFeePermille != nil {
		e.pool.ReferralFeePermille = *upd.ReferralFeePermille
	}
	if upd.BurnRatePercent != nil {
		e.pool.BurnRatePercent = *upd.BurnRatePercent
	}
	if upd.CooldownTicks != nil {
		e.pool.CooldownTicks = *upd.CooldownTicks
	}
	if upd.HalvingInterval != nil {
		e.pool.HalvingInterval = *upd.HalvingInterval
	}
	if upd.DustThresholdDivisor != nil {
		e.pool.DustThresholdDivisor = *upd.DustThresholdDivisor
	}

	if err := e.persist(nil); err != nil {
		return err
	}
	e.emit(types.EventParametersUpdated, e.pool.LastRewardTime, caller, 0)
	return nil
}

// ToggleProduction flips the global gate on purchases, sales, upgrades
// and onboarding. Claims and pool updates keep running either way.
func (e *Engine) ToggleProduction(caller string, enabled bool) error {
	if err := e.requireAuthority(caller); err != nil {
		return err
	}
	e.pool.ProductionEnabled = enabled
	if err := e.persist(nil); err != nil {
		return err
	}
	e.emit(types.EventProductionToggled, e.pool.LastRewardTime, caller, 0)
	log.Printf("production enabled: %v", enabled)
	return nil
}

// UpdatePoolManual forces an accumulator refresh with no other mutation,
// making schedule transitions observable without participant traffic.
func (e *Engine) UpdatePoolManual(caller string, now uint64) error {
	if err := e.requireAuthority(caller); err != nil {
		return err
	}
	e.applyPoolUpdate(computePoolUpdate(e.pool, now))
	if err := e.persist(nil); err != nil {
		return err
	}
	e.emit(types.EventPoolUpdated, now, caller, 0)
	return nil
}

// WithdrawFees moves accumulated token fees out of the fees wallet.
func (e *Engine) WithdrawFees(caller string, now uint64, amt uint64, destination string) error {
	if err := e.requireAuthority(caller); err != nil {
		return err
	}
	if e.ledger.BalanceOf(e.pool.FeesWallet) < amt {
		return types.ErrInsufficientFunds
	}
	if err := e.ledger.Transfer(e.pool.FeesWallet, destination, amt); err != nil {
		return err
	}
	e.emit(types.EventFeesWithdrawn, now, destination, amt)
	return nil
}

// WithdrawSolFees moves accumulated native onboarding fees out of the
// fees wallet.
func (e *Engine) WithdrawSolFees(caller string, now uint64, amt uint64, destination string) error {
	if err := e.requireAuthority(caller); err != nil {
		return err
	}
	if e.ledger.NativeBalanceOf(e.pool.FeesWallet) < amt {
		return types.ErrInsufficientFunds
	}
	if err := e.ledger.NativeTransfer(e.pool.FeesWallet, destination, amt); err != nil {
		return err
	}
	e.emit(types.EventNativeFeesWithdrawn, now, destination, amt)
	return nil
}
