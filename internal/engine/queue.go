package engine

import (
	"container/list"

	"simplecross/internal/price"
)

// priceLevel is the FIFO queue of resting orders sharing one
// (symbol, side, price) — earliest arrival at the front (§3, §4.5).
//
// Backed by container/list rather than the teacher's slice-backed
// book.BuyBook/book.SellBook: a slice needs an O(n) shift to erase from
// the middle (which cancel requires), and the teacher's own heap variant
// only gives log-time access to the *best* element, not FIFO-stable
// removal of an arbitrary one. A list.Element handle, stashed in the
// engine's identifier index, gives cancel and per-fill dequeue O(1) each.
type priceLevel struct {
	price  price.Price
	orders *list.List // element Value is *Order
}

func newPriceLevel(p price.Price) *priceLevel {
	return &priceLevel{price: p, orders: list.New()}
}

// pushBack appends a newly resting order and returns its handle.
func (l *priceLevel) pushBack(o *Order) *list.Element {
	return l.orders.PushBack(o)
}

// remove erases an order from anywhere in the queue in O(1).
func (l *priceLevel) remove(e *list.Element) {
	l.orders.Remove(e)
}

// front returns the handle of the earliest-arrived order, or nil if empty.
func (l *priceLevel) front() *list.Element {
	return l.orders.Front()
}

func (l *priceLevel) empty() bool {
	return l.orders.Len() == 0
}
