package engine

import (
	"github.com/google/btree"

	"github.com/efreitasn/minimatch/internal/domain"
)

// BookEntry represents a single order resting on one side of the book.
type BookEntry struct {
	Price    int64 // domain.MarketPrice for market orders
	Sequence uint64
	OrderID  string
	Order    *domain.Order
}

func (e BookEntry) isMarket() bool {
	return e.Price == domain.MarketPrice
}

// bidLess defines priority for the buy side: market orders before any
// limit order, then higher limit price, then ascending sequence. Min()
// returns the best bid.
func bidLess(a, b BookEntry) bool {
	if a.isMarket() != b.isMarket() {
		return a.isMarket()
	}
	if !a.isMarket() && a.Price != b.Price {
		return a.Price > b.Price
	}
	return a.Sequence < b.Sequence
}

// askLess defines priority for the sell side: market orders before any
// limit order, then lower limit price, then ascending sequence. Min()
// returns the best ask.
func askLess(a, b BookEntry) bool {
	if a.isMarket() != b.isMarket() {
		return a.isMarket()
	}
	if !a.isMarket() && a.Price != b.Price {
		return a.Price < b.Price
	}
	return a.Sequence < b.Sequence
}

// BookSide holds the resting orders of one side in matching priority
// order, backed by a B-tree. Sequence numbers are unique per run, so
// entries never collide. Not safe for concurrent use: the owning
// Engine is the only mutator.
type BookSide struct {
	tree *btree.BTreeG[BookEntry]
}

func newBookSide(less btree.LessFunc[BookEntry]) *BookSide {
	const degree = 32
	return &BookSide{tree: btree.NewG[BookEntry](degree, less)}
}

// NewBidSide creates an empty buy side.
func NewBidSide() *BookSide {
	return newBookSide(bidLess)
}

// NewAskSide creates an empty sell side.
func NewAskSide() *BookSide {
	return newBookSide(askLess)
}

// Insert adds an order to the side at its priority position.
// The order must have remaining quantity; inserting a filled order is
// a caller bug.
func (s *BookSide) Insert(o *domain.Order) {
	s.tree.ReplaceOrInsert(BookEntry{
		Price:    o.Price,
		Sequence: o.Sequence,
		OrderID:  o.OrderID,
		Order:    o,
	})
}

// PeekBest returns the highest-priority resting order without removing
// it, or false when the side is empty.
func (s *BookSide) PeekBest() (BookEntry, bool) {
	return s.tree.Min()
}

// Reduce decrements the entry's order by filledQty. A fully filled
// order is removed from the side; a partially filled one keeps its
// position, since price and sequence are unchanged by a fill.
func (s *BookSide) Reduce(entry BookEntry, filledQty int64) {
	entry.Order.RemainingQuantity -= filledQty
	if entry.Order.Filled() {
		s.tree.Delete(entry)
	}
}

// Walk iterates the side in priority order. The callback returns true
// to continue, false to stop.
func (s *BookSide) Walk(fn func(BookEntry) bool) {
	s.tree.Ascend(fn)
}

// Len returns the number of resting orders on the side.
func (s *BookSide) Len() int {
	return s.tree.Len()
}
