package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/efreitasn/minimatch/internal/domain"
	"github.com/efreitasn/minimatch/internal/engine"
	"github.com/efreitasn/minimatch/internal/feed"
	"github.com/efreitasn/minimatch/internal/store"
)

// Session runs one tape through a matching engine and writes the
// report stream. Each Run owns a fresh engine and registry, so a
// Session can be reused across tapes.
type Session struct {
	logger *slog.Logger
}

// NewSession creates a Session logging through logger.
func NewSession(logger *slog.Logger) *Session {
	return &Session{logger: logger}
}

// Run consumes the tape from in and writes the report to out. A
// malformed header aborts the run before any matching; malformed order
// records are logged and skipped.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	reader := feed.NewReader(in)
	writer := feed.NewWriter(out)

	initialPrice, err := reader.ReadHeader()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	registry := store.NewOrderRegistry()
	eng := engine.New(initialPrice, registry)

	submitted, skipped := 0, 0
	for {
		order, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var recErr *domain.RecordError
			if errors.As(err, &recErr) {
				skipped++
				s.logger.Warn("skipping malformed record",
					slog.Int("line", recErr.Line),
					slog.String("text", recErr.Text),
					slog.String("error", recErr.Err.Error()))
				continue
			}
			return fmt.Errorf("read tape: %w", err)
		}

		report, err := eng.Submit(order)
		if err != nil {
			return fmt.Errorf("submit order %s: %w", order.OrderID, err)
		}
		submitted++

		if err := writer.WriteTrades(report.Trades); err != nil {
			return fmt.Errorf("write trades: %w", err)
		}
		if err := writer.WriteSnapshot(report.Snapshot); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	open := registry.Unexecuted()
	if err := writer.WriteUnexecuted(open); err != nil {
		return fmt.Errorf("write unexecuted report: %w", err)
	}

	s.logger.Info("run complete",
		slog.Int("submitted", submitted),
		slog.Int("skipped", skipped),
		slog.Int("unexecuted", len(open)),
		slog.String("last_price", domain.FormatCents(eng.LastPrice())))

	return nil
}
