package types

import "errors"

// Every instruction detects its failure before mutating anything, so any
// error returned from the engine implies state is unchanged.
var (
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrProductionDisabled = errors.New("production is disabled")
	ErrCooldownNotExpired = errors.New("cooldown not expired")

	ErrMinerCapacityExceeded = errors.New("facility miner capacity exceeded")
	ErrPowerCapacityExceeded = errors.New("facility power capacity exceeded")

	// ErrInvalidMinerType doubles as the shared range-validation error for
	// parameter updates.
	ErrInvalidMinerType    = errors.New("invalid miner type")
	ErrInvalidFacilityType = errors.New("invalid facility type")

	ErrInsufficientBits  = errors.New("insufficient token balance")
	ErrInsufficientFunds = errors.New("insufficient treasury balance")

	ErrNoPendingReward      = errors.New("no pending reward")
	ErrRewardExpired        = errors.New("reward expired")
	ErrRewardAlreadyClaimed = errors.New("reward already claimed")

	ErrAlreadyInitialized = errors.New("pool already initialized")
	ErrNotInitialized     = errors.New("pool not initialized")
	ErrParticipantExists  = errors.New("initial facility already purchased")
	ErrUnknownParticipant = errors.New("participant not found")
	ErrSelfReferral       = errors.New("self-referral is not allowed")
)
