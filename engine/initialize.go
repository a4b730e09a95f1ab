package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/begreatfulforreal/ponzimon-program/amount"
	"github.com/begreatfulforreal/ponzimon-program/config"
	"github.com/begreatfulforreal/ponzimon-program/types"
)

// InitializeProgram seeds the pool singleton. The deployer becomes the
// authority; economic parameters start at their defaults and can be tuned
// afterwards with UpdateParameters.
func (e *Engine) InitializeProgram(params types.InitializeParams) error {
	if e.pool != nil {
		return types.ErrAlreadyInitialized
	}
	if _, err := e.store.GetPool(params.TokenMint); err == nil {
		return types.ErrAlreadyInitialized
	} else if !errors.Is(err, types.ErrNotInitialized) {
		return fmt.Errorf("initialize: %v", err)
	}
	if params.HalvingInterval == 0 || params.TotalSupply == 0 {
		return fmt.Errorf("initialize: %w", types.ErrInvalidMinerType)
	}

	cooldown := uint64(config.DefaultCooldownTicks)
	if params.CooldownTicks != nil {
		cooldown = *params.CooldownTicks
	}
	e.pool = &types.GlobalPool{
		Authority:  params.Authority,
		TokenMint:  params.TokenMint,
		FeesWallet: params.FeesWallet,

		TotalSupply:       params.TotalSupply,
		StartTime:         params.StartTick,
		HalvingInterval:   params.HalvingInterval,
		InitialRewardRate: params.InitialRewardRate,
		CurrentRewardRate: params.InitialRewardRate,
		LastRewardTime:    params.StartTick,

		BurnRatePercent:      config.DefaultBurnRatePercent,
		ReferralFeePermille:  config.DefaultReferralFeePermille,
		ProductionEnabled:    true,
		CooldownTicks:        cooldown,
		DustThresholdDivisor: config.DefaultDustThresholdDivisor,
	}
	if err := e.persist(nil); err != nil {
		e.pool = nil
		return err
	}
	e.emit(types.EventInitialized, params.StartTick, params.Authority, 0)
	log.Printf("pool initialized: supply %s, rate %s/tick, halving every %d ticks",
		amount.Amount(params.TotalSupply), amount.Amount(params.InitialRewardRate), params.HalvingInterval)
	return nil
}
