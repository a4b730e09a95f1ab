package types

import "github.com/begreatfulforreal/ponzimon-program/amount"

// Facility is a participant's current tier: how many miners it can rack
// and how much power those miners may draw in total.
type Facility struct {
	FacilityType       uint8  `json:"facilityType"`
	TotalMinerCapacity uint8  `json:"totalMinerCapacity"`
	PowerOutput        uint64 `json:"powerOutput"`
}

// Miner is one piece of owned equipment. Hashrate is its weight in the
// emission split, power consumption counts against the facility budget.
type Miner struct {
	MinerType        uint8  `json:"minerType"`
	Hashrate         uint64 `json:"hashrate"`
	PowerConsumption uint64 `json:"powerConsumption"`
}

// Participant is the per-owner ledger record. Created once at onboarding,
// never deleted; reset zeroes the equipment but keeps the record.
type Participant struct {
	Owner     string   `json:"owner"`
	Facility  Facility `json:"facility"`
	Equipment []Miner  `json:"equipment"`
	Hashpower uint64   `json:"hashpower"`

	// Referrer is set once at onboarding and immutable thereafter.
	Referrer *string `json:"referrer,omitempty"`

	LastAccRewardPerHash amount.Uint128 `json:"lastAccRewardPerHash"`
	LastClaimTime        uint64         `json:"lastClaimTime"`
	LastUpgradeTime      uint64         `json:"lastUpgradeTime"`
	TotalRewards         uint64         `json:"totalRewards"`

	LastClaimedGlobalRewardID uint64 `json:"lastClaimedGlobalRewardId"`
}

// TotalPowerDraw sums the power consumption of all racked miners.
func (p *Participant) TotalPowerDraw() uint64 {
	var total uint64
	for _, m := range p.Equipment {
		total += m.PowerConsumption
	}
	return total
}

func (p *Participant) Clone() *Participant {
	cp := *p
	cp.Equipment = append([]Miner(nil), p.Equipment...)
	if p.Referrer != nil {
		r := *p.Referrer
		cp.Referrer = &r
	}
	return &cp
}
