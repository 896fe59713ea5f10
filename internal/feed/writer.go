package feed

import (
	"fmt"
	"io"

	"github.com/efreitasn/minimatch/internal/domain"
	"github.com/efreitasn/minimatch/internal/engine"
	"github.com/efreitasn/minimatch/internal/store"
)

const snapshotSeparator = "---------------------------------------------------"

// Writer formats the report stream: the fill pairs and a book snapshot
// after every submission, then the unexecuted lines once the tape is
// done. The final unexecuted line carries no terminator.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w in a report writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteTrades writes the fill lines of one submission in emission
// order, the buyer fill of each execution before its seller fill,
// prices with two decimal digits.
func (w *Writer) WriteTrades(trades []*domain.Trade) error {
	for _, t := range trades {
		verb := "purchased"
		if t.Side == domain.SideSell {
			verb = "sold"
		}
		_, err := fmt.Fprintf(w.w, "order %s %d shares %s at price %s\n",
			t.OrderID, t.Quantity, verb, domain.FormatCents(t.Price))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSnapshot writes the post-submission book view: latest price,
// then the buy side top to bottom, then the sell side. Market orders
// print an M in place of a price.
func (w *Writer) WriteSnapshot(snap engine.Snapshot) error {
	if _, err := fmt.Fprintf(w.w, "Latest price: %s\n", domain.FormatCents(snap.LastPrice)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.w, "Buy Orders:"); err != nil {
		return err
	}
	if err := w.writeSide(snap.Bids); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.w, "Sell Orders:"); err != nil {
		return err
	}
	if err := w.writeSide(snap.Asks); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w.w, "%s\n\n", snapshotSeparator)
	return err
}

func (w *Writer) writeSide(entries []engine.SnapshotEntry) error {
	for _, e := range entries {
		var err error
		if e.Price == domain.MarketPrice {
			_, err = fmt.Fprintf(w.w, "%s M %d\n", e.OrderID, e.Quantity)
		} else {
			_, err = fmt.Fprintf(w.w, "%s %s %d\n", e.OrderID, domain.FormatCents(e.Price), e.Quantity)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w.w)
	return err
}

// WriteUnexecuted writes one line per order with open quantity, in
// arrival order, with no line terminator after the final line.
func (w *Writer) WriteUnexecuted(records []*store.Record) error {
	for i, rec := range records {
		sep := "\n"
		if i == len(records)-1 {
			sep = ""
		}
		_, err := fmt.Fprintf(w.w, "order %s %d shares unexecuted%s",
			rec.OrderID, rec.RemainingQuantity, sep)
		if err != nil {
			return err
		}
	}
	return nil
}
