package domain

// Side indicates whether an order buys or sells.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// MarketPrice is the sentinel price carried by market orders. Tape
// parsing rejects non-positive limit prices, so no accepted record can
// collide with it.
const MarketPrice int64 = -1

// Order represents a single buy or sell instruction read from the tape.
// Identity fields are set once; only RemainingQuantity changes over the
// order's lifetime, and only downward.
type Order struct {
	OrderID           string
	Side              Side
	Quantity          int64
	RemainingQuantity int64
	Price             int64  // cents, MarketPrice for market orders
	Sequence          uint64 // assigned by the engine at submission
}

// IsMarket reports whether the order carries no limit price.
func (o *Order) IsMarket() bool {
	return o.Price == MarketPrice
}

// Filled reports whether the order has no quantity left to execute.
func (o *Order) Filled() bool {
	return o.RemainingQuantity == 0
}
