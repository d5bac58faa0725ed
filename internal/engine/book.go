package engine

// symbolBook is one symbol's two-sided book: bids and asks (§3).
type symbolBook struct {
	bids *sideBook
	asks *sideBook
}

func newSymbolBook() *symbolBook {
	return &symbolBook{
		bids: newSideBook(Buy),
		asks: newSideBook(Sell),
	}
}
