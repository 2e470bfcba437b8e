package transfer

import (
	"context"
	"errors"
)

// ErrInsufficientBalance is returned when an identity's account cannot cover
// a withdrawal.
var ErrInsufficientBalance = errors.New("insufficient account balance")

// Transferer defines the interface for the component that moves real value
// between the ledger and external accounts. The ledger treats it as an
// abstract deposit/withdraw capability: Withdraw pulls attached funds from a
// caller into the ledger, Deposit pays funds out to an identity.
type Transferer interface {
	// Withdraw removes amount from the identity's account.
	Withdraw(ctx context.Context, identity string, amount uint64) error

	// Deposit adds amount to the identity's account.
	Deposit(ctx context.Context, identity string, amount uint64) error
}
