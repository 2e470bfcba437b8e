package transfer

import (
	"context"
	"fmt"
	"sync"
)

// MemoryBank is an in-memory Transferer keeping one balance per identity.
// It backs local runs and tests; a production deployment would wire a real
// payment rail behind the Transferer interface instead.
type MemoryBank struct {
	mu       sync.Mutex
	balances map[string]uint64
}

// NewMemoryBank creates an empty MemoryBank.
func NewMemoryBank() *MemoryBank {
	return &MemoryBank{balances: make(map[string]uint64)}
}

// Make sure we conform to the interface
var _ Transferer = (*MemoryBank)(nil)

// Credit seeds an identity's account. Intended for wiring and tests.
func (b *MemoryBank) Credit(identity string, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[identity] += amount
}

// Balance returns the identity's current account balance.
func (b *MemoryBank) Balance(identity string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[identity]
}

// Withdraw removes amount from the identity's account.
func (b *MemoryBank) Withdraw(ctx context.Context, identity string, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance := b.balances[identity]
	if balance < amount {
		return fmt.Errorf("withdraw %d from %s: %w", amount, identity, ErrInsufficientBalance)
	}
	b.balances[identity] = balance - amount
	return nil
}

// Deposit adds amount to the identity's account.
func (b *MemoryBank) Deposit(ctx context.Context, identity string, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[identity] += amount
	return nil
}
