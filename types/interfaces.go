package types

// Store persists the pool singleton and participant records. The engine
// writes through after every successful instruction.
type Store interface {
	SavePool(pool *GlobalPool) error
	GetPool(tokenMint string) (*GlobalPool, error)
	SaveParticipant(p *Participant) error
	GetParticipant(owner string) (*Participant, error)
	HasParticipant(owner string) (bool, error)
	Close() error
}

// TokenLedger is the engine's view of the surrounding token program: it
// moves already-authenticated balances and never fails for authorization
// reasons. Mint and Burn feed the supply accounting; the native methods
// carry the onboarding fee lane.
type TokenLedger interface {
	Mint(addr string, amt uint64) error
	Burn(addr string, amt uint64) error
	Transfer(from, to string, amt uint64) error
	BalanceOf(addr string) uint64

	NativeCredit(addr string, amt uint64)
	NativeTransfer(from, to string, amt uint64) error
	NativeBalanceOf(addr string) uint64
}
