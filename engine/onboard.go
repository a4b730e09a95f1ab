package engine

import (
	"fmt"

	"github.com/begreatfulforreal/ponzimon-program/catalog"
	"github.com/begreatfulforreal/ponzimon-program/config"
	"github.com/begreatfulforreal/ponzimon-program/types"
)

// PurchaseInitialFacility onboards a new participant: charges the native
// onboarding fee into the fees wallet and grants the starter facility with
// one starter miner already racked. The referrer, if any, is fixed here
// for the lifetime of the record.
func (e *Engine) PurchaseInitialFacility(caller string, now uint64, referrer *string) (*types.Participant, error) {
	if err := e.requireInitialized(); err != nil {
		return nil, err
	}
	if !e.pool.ProductionEnabled {
		return nil, types.ErrProductionDisabled
	}
	exists, err := e.store.HasParticipant(caller)
	if err != nil {
		return nil, fmt.Errorf("onboard %s: %v", caller, err)
	}
	if exists {
		return nil, types.ErrParticipantExists
	}
	if referrer != nil && *referrer == caller {
		return nil, types.ErrSelfReferral
	}
	if e.ledger.NativeBalanceOf(caller) < config.OnboardingFeeNative {
		return nil, types.ErrInsufficientBits
	}

	u := computePoolUpdate(e.pool, now)

	if err := e.ledger.NativeTransfer(caller, e.pool.FeesWallet, config.OnboardingFeeNative); err != nil {
		return nil, err
	}
	e.applyPoolUpdate(u)

	starter := catalog.StarterMiner()
	p := &types.Participant{
		Owner:                caller,
		Facility:             catalog.StarterFacility(),
		Equipment:            []types.Miner{starter},
		Hashpower:            starter.Hashrate,
		Referrer:             referrer,
		LastAccRewardPerHash: e.pool.AccRewardPerHash,
		LastClaimTime:        now,
		LastUpgradeTime:      now,
	}
	e.pool.TotalHashpower += starter.Hashrate

	if err := e.persist(p); err != nil {
		return nil, err
	}
	e.emit(types.EventFacilityPurchased, now, caller, config.OnboardingFeeNative)
	return p.Clone(), nil
}
