package engine

import (
	"github.com/google/uuid"

	"github.com/efreitasn/minimatch/internal/domain"
	"github.com/efreitasn/minimatch/internal/store"
)

// Engine implements continuous double-auction matching for a single
// instrument under price-time priority. It owns both book sides and
// the last traded price.
//
// Matching within one book is sequentially dependent on priority order
// and on the last traded price, so Submit must never run concurrently.
// Run one Engine per instrument to parallelize across instruments.
type Engine struct {
	bids      *BookSide
	asks      *BookSide
	lastPrice int64
	seq       uint64
	registry  *store.OrderRegistry
}

// New creates an Engine with the given initial last traded price,
// normally the tape's header value. Every accepted order is recorded
// in registry and its remaining quantity kept in sync after each fill.
func New(initialPrice int64, registry *store.OrderRegistry) *Engine {
	return &Engine{
		bids:      NewBidSide(),
		asks:      NewAskSide(),
		lastPrice: initialPrice,
		registry:  registry,
	}
}

// LastPrice returns the price of the most recent execution, or the
// initial header price when nothing has traded yet.
func (e *Engine) LastPrice() int64 {
	return e.lastPrice
}

// Submit runs the incoming order through the matching loop and is the
// engine's sole entry point.
//
// The order is assigned the next arrival sequence, then crossed
// against the best of the opposing side until its quantity is
// exhausted, the opposing side empties, or the price check blocks.
// Each execution emits a buyer fill followed by a seller fill and
// updates the last traded price. Any remainder rests on the order's
// own side.
//
// An order with non-positive quantity is rejected without mutating any
// state.
func (e *Engine) Submit(incoming *domain.Order) (*ExecutionReport, error) {
	if incoming.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	e.seq++
	incoming.Sequence = e.seq
	incoming.RemainingQuantity = incoming.Quantity
	e.registry.Add(incoming)

	opposing, own := e.asks, e.bids
	if incoming.Side == domain.SideSell {
		opposing, own = e.bids, e.asks
	}

	var trades []*domain.Trade

	for incoming.RemainingQuantity > 0 {
		best, ok := opposing.PeekBest()
		if !ok {
			break
		}
		resting := best.Order

		// Price check: only two limit orders can fail to cross. A
		// market order on either side never blocks on price.
		if !incoming.IsMarket() && !resting.IsMarket() {
			if incoming.Side == domain.SideBuy && incoming.Price < resting.Price {
				break
			}
			if incoming.Side == domain.SideSell && incoming.Price > resting.Price {
				break
			}
		}

		execQty := incoming.RemainingQuantity
		if resting.RemainingQuantity < execQty {
			execQty = resting.RemainingQuantity
		}

		execPrice := e.executionPrice(incoming, resting)

		buyID, sellID := incoming.OrderID, resting.OrderID
		if incoming.Side == domain.SideSell {
			buyID, sellID = resting.OrderID, incoming.OrderID
		}

		tradeID := uuid.New().String()
		trades = append(trades,
			&domain.Trade{TradeID: tradeID, OrderID: buyID, Side: domain.SideBuy, Quantity: execQty, Price: execPrice},
			&domain.Trade{TradeID: tradeID, OrderID: sellID, Side: domain.SideSell, Quantity: execQty, Price: execPrice},
		)

		e.lastPrice = execPrice

		incoming.RemainingQuantity -= execQty
		opposing.Reduce(best, execQty)

		e.registry.SetRemaining(incoming.OrderID, incoming.RemainingQuantity)
		e.registry.SetRemaining(resting.OrderID, resting.RemainingQuantity)
	}

	if incoming.RemainingQuantity > 0 {
		own.Insert(incoming)
	}

	return &ExecutionReport{
		Trades:   trades,
		Snapshot: e.Snapshot(),
	}, nil
}

// Snapshot returns a read-only view of both book sides and the last
// traded price. It mutates nothing.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		LastPrice: e.lastPrice,
		Bids:      snapshotSide(e.bids),
		Asks:      snapshotSide(e.asks),
	}
}

// executionPrice implements the price rule for a crossed pair. The
// resting order's limit wins whenever both carry one; a lone limit
// price on either side sets the price; two market orders trade at the
// last traded price.
func (e *Engine) executionPrice(incoming, resting *domain.Order) int64 {
	switch {
	case !resting.IsMarket():
		return resting.Price
	case !incoming.IsMarket():
		return incoming.Price
	default:
		return e.lastPrice
	}
}
