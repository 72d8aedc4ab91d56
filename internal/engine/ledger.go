package engine

// Ledger tracks the on-hand quantity per product id. Quantities never go
// negative: decrements are clamped to the available amount. Not
// goroutine-safe on its own; the Engine serializes all access.
type Ledger struct {
	onHand map[int64]int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{onHand: make(map[int64]int)}
}

// Ensure creates a zeroed entry for a product if none exists yet.
func (l *Ledger) Ensure(productID int64) {
	if _, ok := l.onHand[productID]; !ok {
		l.onHand[productID] = 0
	}
}

// Restock adds quantity to a product's balance. Unknown product ids are
// upserted rather than rejected.
func (l *Ledger) Restock(productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	l.onHand[productID] += quantity
	return nil
}

// Decrement subtracts up to quantity from a product's balance and returns
// the amount actually subtracted.
func (l *Ledger) Decrement(productID int64, quantity int) int {
	available := l.onHand[productID]
	if quantity > available {
		quantity = available
	}
	l.onHand[productID] = available - quantity
	return quantity
}

// OnHand returns the current balance for a product, 0 if unknown.
func (l *Ledger) OnHand(productID int64) int {
	return l.onHand[productID]
}

// Snapshot returns a copy of all balances.
func (l *Ledger) Snapshot() map[int64]int {
	out := make(map[int64]int, len(l.onHand))
	for id, qty := range l.onHand {
		out[id] = qty
	}
	return out
}
