package engine

import "simplecross/internal/price"

// Order is the immutable descriptor of an accepted order plus its one
// mutable field, Open — the remaining unfilled quantity (§3). Symbol,
// Side, Price and the original Quantity never change after acceptance;
// only Open is mutated, by fills and never by cancel (cancel removes the
// order outright).
type Order struct {
	ID       OrderID
	Symbol   string
	Side     Side
	Quantity Quantity // original quantity, set once at acceptance
	Price    price.Price
	Open     Quantity // remaining open quantity
}
