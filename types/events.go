package types

import "github.com/google/uuid"

// Event kinds appended to the engine journal, one per mutating instruction.
const (
	EventInitialized         = "initialized"
	EventFacilityPurchased   = "initial_facility_purchased"
	EventRewardsClaimed      = "rewards_claimed"
	EventMinerPurchased      = "miner_purchased"
	EventMinerSold           = "miner_sold"
	EventFacilityUpgraded    = "facility_upgraded"
	EventParticipantReset    = "participant_reset"
	EventParametersUpdated   = "parameters_updated"
	EventProductionToggled   = "production_toggled"
	EventPoolUpdated         = "pool_updated"
	EventBonusRewardSeeded   = "bonus_reward_seeded"
	EventBonusRewardClaimed  = "bonus_reward_claimed"
	EventFeesWithdrawn       = "fees_withdrawn"
	EventNativeFeesWithdrawn = "native_fees_withdrawn"
)

// Event is one entry of the engine's in-memory journal of mutating
// instructions, drained by the surrounding ledger client.
type Event struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Tick   uint64 `json:"tick"`
	Owner  string `json:"owner,omitempty"`
	Amount uint64 `json:"amount,omitempty"`
}

func NewEvent(kind string, tick uint64, owner string, amt uint64) Event {
	return Event{
		ID:     uuid.New().String(),
		Kind:   kind,
		Tick:   tick,
		Owner:  owner,
		Amount: amt,
	}
}
