package domain

// Trade represents one side's fill of a matched execution. Every
// execution produces two Trade records sharing a TradeID: the buyer
// fill first, then the seller fill.
type Trade struct {
	TradeID  string
	OrderID  string
	Side     Side
	Quantity int64
	Price    int64 // cents
}
