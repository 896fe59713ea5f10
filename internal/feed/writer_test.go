package feed

import (
	"bytes"
	"testing"

	"github.com/efreitasn/minimatch/internal/domain"
	"github.com/efreitasn/minimatch/internal/engine"
	"github.com/efreitasn/minimatch/internal/store"
)

func TestWriteTrades(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	trades := []*domain.Trade{
		{TradeID: "t1", OrderID: "B1", Side: domain.SideBuy, Quantity: 10, Price: 10100},
		{TradeID: "t1", OrderID: "S1", Side: domain.SideSell, Quantity: 10, Price: 10100},
	}
	if err := w.WriteTrades(trades); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "order B1 10 shares purchased at price 101.00\n" +
		"order S1 10 shares sold at price 101.00\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteTrades_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteTrades(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestWriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	snap := engine.Snapshot{
		LastPrice: 5000,
		Bids: []engine.SnapshotEntry{
			{OrderID: "B2", Price: domain.MarketPrice, Quantity: 5},
			{OrderID: "B1", Price: 4900, Quantity: 3},
		},
		Asks: []engine.SnapshotEntry{
			{OrderID: "S1", Price: 5100, Quantity: 7},
		},
	}
	if err := w.WriteSnapshot(snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Latest price: 50.00\n" +
		"Buy Orders:\n" +
		"B2 M 5\n" +
		"B1 49.00 3\n" +
		"\n" +
		"Sell Orders:\n" +
		"S1 51.00 7\n" +
		"\n" +
		"---------------------------------------------------\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteUnexecuted_NoTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	records := []*store.Record{
		{OrderID: "B1", RemainingQuantity: 2},
		{OrderID: "S3", RemainingQuantity: 7},
	}
	if err := w.WriteUnexecuted(records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "order B1 2 shares unexecuted\norder S3 7 shares unexecuted"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteUnexecuted_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteUnexecuted(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
