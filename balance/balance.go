// Package balance is the in-process stand-in for the external token
// program: a map-backed ledger of token and native balances. The engine
// only ever sees it through the types.TokenLedger interface.
package balance

import (
	"fmt"
	"sync"

	"github.com/begreatfulforreal/ponzimon-program/types"
)

type Ledger struct {
	mu     sync.RWMutex
	tokens map[string]uint64
	native map[string]uint64
	minted uint64
	burned uint64
}

var _ types.TokenLedger = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{
		tokens: make(map[string]uint64),
		native: make(map[string]uint64),
	}
}

func (l *Ledger) Mint(addr string, amt uint64) error {
	if amt == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[addr] += amt
	l.minted += amt
	return nil
}

func (l *Ledger) Burn(addr string, amt uint64) error {
	if amt == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tokens[addr] < amt {
		return fmt.Errorf("burn %d from %s: %w", amt, addr, types.ErrInsufficientBits)
	}
	l.tokens[addr] -= amt
	l.burned += amt
	return nil
}

func (l *Ledger) Transfer(from, to string, amt uint64) error {
	if amt == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tokens[from] < amt {
		return fmt.Errorf("transfer %d from %s: %w", amt, from, types.ErrInsufficientBits)
	}
	l.tokens[from] -= amt
	l.tokens[to] += amt
	return nil
}

func (l *Ledger) BalanceOf(addr string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tokens[addr]
}

func (l *Ledger) NativeCredit(addr string, amt uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.native[addr] += amt
}

func (l *Ledger) NativeTransfer(from, to string, amt uint64) error {
	if amt == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.native[from] < amt {
		return fmt.Errorf("native transfer %d from %s: %w", amt, from, types.ErrInsufficientFunds)
	}
	l.native[from] -= amt
	l.native[to] += amt
	return nil
}

func (l *Ledger) NativeBalanceOf(addr string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.native[addr]
}

// TotalMinted and TotalBurned expose lifetime ledger flow for audits.
func (l *Ledger) TotalMinted() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.minted
}

func (l *Ledger) TotalBurned() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.burned
}
