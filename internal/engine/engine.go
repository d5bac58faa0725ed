// Package engine implements the SimpleCross matching core: the per-symbol
// two-sided book, price-time priority matching, cancel-by-identifier, and
// ordered snapshot rendering (spec.md §2 item 5).
package engine

import (
	"container/list"
	"sort"

	"simplecross/internal/price"

	"github.com/rs/zerolog/log"
)

// locator is the engine's identifier index entry: enough to find a
// resting order's exact queue slot without scanning the book (§4.5),
// carrying a direct list.Element handle rather than just symbol/side/price
// so cancel and per-fill removal are both O(1).
type locator struct {
	symbol string
	side   Side
	level  *priceLevel
	elem   *list.Element
}

// Engine is the matching engine state: one symbol book per symbol, an
// identifier index, and the append-only set of every identifier ever
// accepted (required by I6 — duplicate detection must survive an order's
// removal). Engine carries no internal synchronization; §5 requires the
// core be driven by a single sequential caller.
type Engine struct {
	books    map[string]*symbolBook
	index    map[OrderID]*locator
	everSeen map[OrderID]struct{}
}

// New returns an empty engine with no resting orders and no known symbols.
func New() *Engine {
	return &Engine{
		books:    make(map[string]*symbolBook),
		index:    make(map[OrderID]*locator),
		everSeen: make(map[OrderID]struct{}),
	}
}

func (e *Engine) bookFor(symbol string) *symbolBook {
	b, ok := e.books[symbol]
	if !ok {
		b = newSymbolBook()
		e.books[symbol] = b
	}
	return b
}

// Place implements §4.2: a cross phase that walks the opposite side in
// price-priority order while marketable, then a rest phase that queues
// whatever quantity remains. o must arrive with o.Open == o.Quantity.
func (e *Engine) Place(o Order) []Result {
	if _, seen := e.everSeen[o.ID]; seen {
		return []Result{Err{OrderID: o.ID, Message: "Duplicate order id"}}
	}
	e.everSeen[o.ID] = struct{}{}

	book := e.bookFor(o.Symbol)

	opposite := book.asks
	own := book.bids
	marketable := func(restingPrice price.Price) bool { return restingPrice <= o.Price }
	if o.Side == Sell {
		opposite = book.bids
		own = book.asks
		marketable = func(restingPrice price.Price) bool { return restingPrice >= o.Price }
	}

	var results []Result

	for o.Open > 0 {
		lvl, ok := opposite.best()
		if !ok || !marketable(lvl.price) {
			break
		}

		for o.Open > 0 {
			front := lvl.front()
			if front == nil {
				break
			}
			resting := front.Value.(*Order)
			if resting.Open == 0 {
				// Should not occur: a fully filled order is removed from its
				// queue in the same step that zeroes Open (below), so the
				// front of a non-empty queue is always still open.
				log.Error().Uint32("orderId", uint32(resting.ID)).Str("symbol", o.Symbol).
					Msg("internal error: zero-quantity order found resting on book")
				results = append(results, Err{OrderID: o.ID, Message: "internal error: zero-quantity order resting"})
				return results
			}

			matchQty := min(o.Open, resting.Open)
			o.Open -= matchQty
			resting.Open -= matchQty

			results = append(results,
				Fill{OrderID: o.ID, Symbol: o.Symbol, Quantity: matchQty, Price: resting.Price},
				Fill{OrderID: resting.ID, Symbol: o.Symbol, Quantity: matchQty, Price: resting.Price},
			)

			if resting.Open == 0 {
				lvl.remove(front)
				delete(e.index, resting.ID)
			}
		}

		opposite.dropIfEmpty(lvl)
	}

	if o.Open > 0 {
		lvl := own.getOrCreate(o.Price)
		resting := o
		elem := lvl.pushBack(&resting)
		e.index[o.ID] = &locator{symbol: o.Symbol, side: o.Side, level: lvl, elem: elem}
	}

	return results
}

// Cancel implements §4.3: an identifier not currently resting (never
// accepted, already filled, or already cancelled) is reported identically.
func (e *Engine) Cancel(id OrderID) []Result {
	loc, ok := e.index[id]
	if !ok {
		return []Result{Err{OrderID: id, Message: "Order ID not on book"}}
	}

	book, ok := e.books[loc.symbol]
	if !ok {
		// Should not occur: a locator is only ever created alongside the
		// symbol book it points into, and books are never removed.
		log.Error().Uint32("orderId", uint32(id)).Str("symbol", loc.symbol).
			Msg("internal error: index referenced unknown symbol book")
		delete(e.index, id)
		return []Result{Err{OrderID: id, Message: "internal error: unknown book for resting order"}}
	}

	loc.level.remove(loc.elem)

	side := book.bids
	if loc.side == Sell {
		side = book.asks
	}
	side.dropIfEmpty(loc.level)

	delete(e.index, id)
	return []Result{CancelAck{OrderID: id}}
}

// Snapshot implements §4.4: symbols lexicographic; per symbol, asks
// highest-to-lowest then bids highest-to-lowest; within a level, asks
// print most recently arrived first and bids earliest arrived first.
func (e *Engine) Snapshot() []Result {
	symbols := make([]string, 0, len(e.books))
	for s := range e.books {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var results []Result
	for _, symbol := range symbols {
		book := e.books[symbol]

		// Within a level, asks print most-recent-arrival-first and bids
		// print earliest-arrival-first. §4.4's prose states a single
		// "reverse arrival order" rule for both sides, but the worked
		// reference scenario (spec.md §8, Scenario C) only exhibits that
		// rule on the ask side and shows plain FIFO on the bid side; per
		// the spec's own Design Notes, the reference's observable output
		// is authoritative where the two disagree.
		emitAsks := func(lvl *priceLevel) bool {
			for el := lvl.orders.Back(); el != nil; el = el.Prev() {
				o := el.Value.(*Order)
				results = append(results, BookEntry{OrderID: o.ID, Symbol: symbol, Side: Sell, Open: o.Open, Price: o.Price})
			}
			return true
		}
		emitBids := func(lvl *priceLevel) bool {
			for el := lvl.orders.Front(); el != nil; el = el.Next() {
				o := el.Value.(*Order)
				results = append(results, BookEntry{OrderID: o.ID, Symbol: symbol, Side: Buy, Open: o.Open, Price: o.Price})
			}
			return true
		}
		book.asks.topDown(emitAsks)
		book.bids.topDown(emitBids)
	}
	return results
}

// Stats summarizes the engine's current book state for operational
// logging (distinct symbols, resting order count, total open quantity).
type Stats struct {
	Symbols       int
	RestingOrders int
	OpenQuantity  uint64
}

// Stats computes a snapshot of book statistics without mutating state.
func (e *Engine) Stats() Stats {
	var openQty uint64
	for _, loc := range e.index {
		openQty += uint64(loc.elem.Value.(*Order).Open)
	}
	return Stats{
		Symbols:       len(e.books),
		RestingOrders: len(e.index),
		OpenQuantity:  openQty,
	}
}
