package engine

import "simplecross/internal/price"

// Result is one outcome record produced by an engine operation. A single
// call to Place, Cancel or Snapshot returns a slice of Results, which
// internal/dispatch renders into the wire lines of §6 — the engine itself
// never formats text, grounded on the separation the teacher draws between
// internal/common.Trade (a plain data record) and the wire-formatting code
// in internal/net/messages.go.
type Result interface {
	isResult()
}

// Fill is emitted in aggressor/passive pairs by a cross (§4.2); Price is
// always the resting order's price.
type Fill struct {
	OrderID  OrderID
	Symbol   string
	Quantity Quantity
	Price    price.Price
}

// CancelAck confirms a successful cancel (§4.3).
type CancelAck struct {
	OrderID OrderID
}

// BookEntry is one line of a snapshot (§4.4).
type BookEntry struct {
	OrderID OrderID
	Symbol  string
	Side    Side
	Open    Quantity
	Price   price.Price
}

// Err reports a failed operation; it never mutates engine state (§4.2,
// §4.3). OID is 0 when no identifier could be determined.
type Err struct {
	OrderID OrderID
	Message string
}

func (Fill) isResult()      {}
func (CancelAck) isResult() {}
func (BookEntry) isResult() {}
func (Err) isResult()       {}
