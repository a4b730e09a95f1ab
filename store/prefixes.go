package store

// Storage key prefixes.
const (
	PoolPrefix        = "pool-"
	ParticipantPrefix = "pl-"
)
