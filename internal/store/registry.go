package store

import (
	"github.com/efreitasn/minimatch/internal/domain"
)

// Record is the registry's independent copy of a submitted order. It
// is kept in sync by explicit updates from the engine, never by
// aliasing the book's copy.
type Record struct {
	OrderID           string
	Side              domain.Side
	Quantity          int64
	RemainingQuantity int64
	Price             int64
	Sequence          uint64
}

// OrderRegistry holds the audit history of every submitted order in
// arrival order, with a primary index by order id for O(1) quantity
// updates. It feeds the end-of-run unexecuted report and is never read
// by the matching loop. Not safe for concurrent use.
type OrderRegistry struct {
	records []*Record
	byID    map[string]*Record
}

// NewOrderRegistry creates an empty OrderRegistry.
func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{byID: make(map[string]*Record)}
}

// Add appends a record for a newly accepted order. When an order id
// repeats, every arrival keeps its own record but the index keeps the
// first, so later quantity updates touch the earliest record with
// that id.
func (r *OrderRegistry) Add(o *domain.Order) {
	rec := &Record{
		OrderID:           o.OrderID,
		Side:              o.Side,
		Quantity:          o.Quantity,
		RemainingQuantity: o.RemainingQuantity,
		Price:             o.Price,
		Sequence:          o.Sequence,
	}
	r.records = append(r.records, rec)
	if _, ok := r.byID[o.OrderID]; !ok {
		r.byID[o.OrderID] = rec
	}
}

// SetRemaining records an order's remaining quantity after a fill.
// Unknown ids are ignored.
func (r *OrderRegistry) SetRemaining(orderID string, remaining int64) {
	if rec, ok := r.byID[orderID]; ok {
		rec.RemainingQuantity = remaining
	}
}

// Unexecuted returns the records whose quantity remains open, in
// original arrival order.
func (r *OrderRegistry) Unexecuted() []*Record {
	open := make([]*Record, 0)
	for _, rec := range r.records {
		if rec.RemainingQuantity > 0 {
			open = append(open, rec)
		}
	}
	return open
}

// Len returns the number of submitted orders.
func (r *OrderRegistry) Len() int {
	return len(r.records)
}
