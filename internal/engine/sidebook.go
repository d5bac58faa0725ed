package engine

import (
	"simplecross/internal/price"

	"github.com/tidwall/btree"
)

// sideBook is a sorted map from price to priceLevel for one (symbol, side)
// pair, grounded on internal/engine/orderbook.go's
// `PriceLevels = btree.BTreeG[*PriceLevel]` (the teacher's own side-book
// type). Bids compare descending and asks ascending, so on either side
// Min/MinMut always yields the best (most marketable) price — exactly the
// teacher's convention in OrderBook.handleMarket/Match.
type sideBook struct {
	side   Side
	levels *btree.BTreeG[*priceLevel]
}

func newSideBook(side Side) *sideBook {
	var less func(a, b *priceLevel) bool
	if side == Buy {
		less = func(a, b *priceLevel) bool { return a.price > b.price }
	} else {
		less = func(a, b *priceLevel) bool { return a.price < b.price }
	}
	return &sideBook{side: side, levels: btree.NewBTreeG(less)}
}

// best returns the top-of-book price level for this side, if any.
func (b *sideBook) best() (*priceLevel, bool) {
	return b.levels.MinMut()
}

func (b *sideBook) get(p price.Price) (*priceLevel, bool) {
	return b.levels.GetMut(&priceLevel{price: p})
}

// getOrCreate returns the existing level at p, or inserts and returns a
// fresh one.
func (b *sideBook) getOrCreate(p price.Price) *priceLevel {
	if lvl, ok := b.get(p); ok {
		return lvl
	}
	lvl := newPriceLevel(p)
	b.levels.Set(lvl)
	return lvl
}

// dropIfEmpty removes lvl from the book once its queue has been drained,
// maintaining I2 (no empty levels ever rest in a side book).
func (b *sideBook) dropIfEmpty(lvl *priceLevel) {
	if lvl.empty() {
		b.levels.Delete(lvl)
	}
}

// topDown visits every resting level from the highest price to the
// lowest — the ordering the §4.4 snapshot requires on both sides. Bids are
// already stored highest-first by their own comparator, so a plain
// ascending Scan suffices; asks are stored lowest-first, so topDown
// reverses the traversal.
func (b *sideBook) topDown(fn func(*priceLevel) bool) {
	if b.side == Buy {
		b.levels.Scan(fn)
	} else {
		b.levels.Reverse(fn)
	}
}
