package transfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBank(t *testing.T) {
	ctx := context.Background()

	t.Run("Deposit Then Withdraw", func(t *testing.T) {
		bank := NewMemoryBank()

		require.NoError(t, bank.Deposit(ctx, "alice", 100))
		assert.Equal(t, uint64(100), bank.Balance("alice"))

		require.NoError(t, bank.Withdraw(ctx, "alice", 60))
		assert.Equal(t, uint64(40), bank.Balance("alice"))
	})

	t.Run("Withdraw More Than Balance", func(t *testing.T) {
		bank := NewMemoryBank()
		bank.Credit("alice", 50)

		err := bank.Withdraw(ctx, "alice", 100)

		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Equal(t, uint64(50), bank.Balance("alice"))
	})

	t.Run("Withdraw From Unknown Identity", func(t *testing.T) {
		bank := NewMemoryBank()

		err := bank.Withdraw(ctx, "ghost", 1)

		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("Balances Are Per Identity", func(t *testing.T) {
		bank := NewMemoryBank()
		bank.Credit("alice", 100)
		bank.Credit("bob", 200)

		require.NoError(t, bank.Withdraw(ctx, "bob", 150))

		assert.Equal(t, uint64(100), bank.Balance("alice"))
		assert.Equal(t, uint64(50), bank.Balance("bob"))
	})
}
