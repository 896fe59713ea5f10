package engine

import "github.com/efreitasn/minimatch/internal/domain"

// SnapshotEntry is a read-only view of one resting order.
type SnapshotEntry struct {
	OrderID  string
	Price    int64 // domain.MarketPrice for market orders
	Quantity int64
}

// Snapshot is a read-only view of both book sides in priority order
// plus the last traded price, taken after a submission has been fully
// processed.
type Snapshot struct {
	LastPrice int64
	Bids      []SnapshotEntry
	Asks      []SnapshotEntry
}

// ExecutionReport describes the outcome of one submission: the fills
// it produced, in emission order, and the post-submission snapshot.
type ExecutionReport struct {
	Trades   []*domain.Trade
	Snapshot Snapshot
}

func snapshotSide(side *BookSide) []SnapshotEntry {
	entries := make([]SnapshotEntry, 0, side.Len())
	side.Walk(func(e BookEntry) bool {
		entries = append(entries, SnapshotEntry{
			OrderID:  e.OrderID,
			Price:    e.Price,
			Quantity: e.Order.RemainingQuantity,
		})
		return true
	})
	return entries
}
