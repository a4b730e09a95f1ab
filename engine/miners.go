package engine

import (
	"github.com/begreatfulforreal/ponzimon-program/amount"
	"github.com/begreatfulforreal/ponzimon-program/catalog"
	"github.com/begreatfulforreal/ponzimon-program/types"
)

// spendWithBurn deducts cost from the owner's balance: the burn share is
// destroyed and counted into BurnedTokens, the remainder goes to the fees
// wallet. Callers have already verified the balance covers the cost.
func (e *Engine) spendWithBurn(owner string, cost uint64) error {
	burn := amount.MulDiv(cost, uint64(e.pool.BurnRatePercent), 100)
	if err := e.ledger.Burn(owner, burn); err != nil {
		return err
	}
	if err := e.ledger.Transfer(owner, e.pool.FeesWallet, cost-burn); err != nil {
		return err
	}
	e.pool.BurnedTokens = amount.SatAdd(e.pool.BurnedTokens, burn)
	return nil
}

// BuyMiner racks a new miner of the given tier. Pending rewards settle
// first, so the cost is paid from a balance that already includes the
// freshly accrued reward. Equipment is stored densely; slotIndex only
// chooses the insert position.
func (e *Engine) BuyMiner(caller string, now uint64, minerType, slotIndex uint8) error {
	if err := e.requireInitialized(); err != nil {
		return err
	}
	if !e.pool.ProductionEnabled {
		return types.ErrProductionDisabled
	}
	tier, err := catalog.Miner(minerType)
	if err != nil {
		return err
	}
	p, err := e.store.GetParticipant(caller)
	if err != nil {
		return err
	}
	if len(p.Equipment) >= int(p.Facility.TotalMinerCapacity) {
		return types.ErrMinerCapacityExceeded
	}
	if p.TotalPowerDraw()+tier.PowerConsumption > p.Facility.PowerOutput {
		return types.ErrPowerCapacityExceeded
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

	miner := types.Miner{
		MinerType:        minerType,
		Hashrate:         tier.Hashrate,
		PowerConsumption: tier.PowerConsumption,
	}
	at := int(slotIndex)
	if at > len(p.Equipment) {
		at = len(p.Equipment)
	}
	p.Equipment = append(p.Equipment, types.Miner{})
	copy(p.Equipment[at+1:], p.Equipment[at:])
	p.Equipment[at] = miner
	p.Hashpower += tier.Hashrate
	e.pool.TotalHashpower += tier.Hashrate

	if err := e.persist(p); err != nil {
		return err
	}
	e.emit(types.EventMinerPurchased, now, caller, tier.Cost)
	return nil
}

// SellMiner removes the miner at index. The sale pays nothing; it only
// frees capacity and sheds the miner's hashpower from both tallies.
func (e *Engine) SellMiner(caller string, now uint64, index uint8) error {
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
	if int(index) >= len(p.Equipment) {
		return types.ErrInvalidMinerType
	}

	u := computePoolUpdate(e.pool, now)
	s := computeSettlement(u, e.pool, p, false)

	e.applyPoolUpdate(u)
	if err := e.applySettlement(u, s, p); err != nil {
		return err
	}

	sold := p.Equipment[index]
	p.Equipment = append(p.Equipment[:index], p.Equipment[index+1:]...)
	p.Hashpower = amount.SatSub(p.Hashpower, sold.Hashrate)
	e.pool.TotalHashpower = amount.SatSub(e.pool.TotalHashpower, sold.Hashrate)

	if err := e.persist(p); err != nil {
		return err
	}
	e.emit(types.EventMinerSold, now, caller, sold.Hashrate)
	return nil
}
