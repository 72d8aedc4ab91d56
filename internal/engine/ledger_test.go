package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRestockRejectsNonPositive(t *testing.T) {
	l := NewLedger()

	assert.ErrorIs(t, l.Restock(0, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, l.Restock(0, -3), ErrInvalidQuantity)
	assert.Equal(t, 0, l.OnHand(0))
}

func TestLedgerRestockUpsertsUnknownProduct(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Restock(99, 5))
	assert.Equal(t, 5, l.OnHand(99))
}

func TestLedgerDecrementClampsAtZero(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Restock(0, 3))

	assert.Equal(t, 3, l.Decrement(0, 10))
	assert.Equal(t, 0, l.OnHand(0))

	assert.Equal(t, 0, l.Decrement(0, 1))
	assert.Equal(t, 0, l.OnHand(0))
}

func TestLedgerOnHandUnknownIsZero(t *testing.T) {
	l := NewLedger()
	assert.Equal(t, 0, l.OnHand(42))
}

func TestLedgerSnapshotIsCopy(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Restock(0, 2))

	snap := l.Snapshot()
	snap[0] = 100

	assert.Equal(t, 2, l.OnHand(0))
}
