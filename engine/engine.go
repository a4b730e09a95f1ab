// Package engine is the accounting core: the pool-update algorithm, the
// per-participant accrual accumulator, halving/supply-cap arithmetic, the
// burn/governance split on purchases, and the bonus-reward subsystem.
//
// The engine holds no locks. The surrounding ledger client serializes
// calls, so every instruction observes a monotonically increasing tick and
// a consistent aggregate. Each instruction validates every precondition
// before mutating anything: an error return means state is untouched.
package engine

import (
	"github.com/begreatfulforreal/ponzimon-program/types"
)

type Engine struct {
	store  types.Store
	ledger types.TokenLedger
	pool   *types.GlobalPool
	events []types.Event
}

func New(store types.Store, ledger types.TokenLedger) *Engine {
	return &Engine{store: store, ledger: ledger}
}

// LoadPool restores the pool singleton from the store, for engines picking
// up an existing deployment.
func (e *Engine) LoadPool(tokenMint string) error {
	pool, err := e.store.GetPool(tokenMint)
	if err != nil {
		return err
	}
	e.pool = pool
	return nil
}

// Pool returns a snapshot of the pool aggregate.
func (e *Engine) Pool() *types.GlobalPool {
	if e.pool == nil {
		return nil
	}
	return e.pool.Clone()
}

// Participant returns the stored record for an owner.
func (e *Engine) Participant(owner string) (*types.Participant, error) {
	return e.store.GetParticipant(owner)
}

// Events returns the journal accumulated since the last drain.
func (e *Engine) Events() []types.Event {
	return append([]types.Event(nil), e.events...)
}

// DrainEvents returns the journal and clears it.
func (e *Engine) DrainEvents() []types.Event {
	evs := e.events
	e.events = nil
	return evs
}

func (e *Engine) emit(kind string, tick uint64, owner string, amt uint64) {
	e.events = append(e.events, types.NewEvent(kind, tick, owner, amt))
}

func (e *Engine) requireInitialized() error {
	if e.pool == nil {
		return types.ErrNotInitialized
	}
	return nil
}

func (e *Engine) requireAuthority(caller string) error {
	if err := e.requireInitialized(); err != nil {
		return err
	}
	if caller != e.pool.Authority {
		return types.ErrUnauthorized
	}
	return nil
}

// persist writes the pool (and optionally one participant) through to the
// store after a successful instruction.
func (e *Engine) persist(p *types.Participant) error {
	if err := e.store.SavePool(e.pool); err != nil {
		return err
	}
	if p != nil {
		return e.store.SaveParticipant(p)
	}
	return nil
}
