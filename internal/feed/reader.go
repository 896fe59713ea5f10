package feed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/efreitasn/minimatch/internal/domain"
)

// Reader parses the order tape: a header line carrying the initial
// last traded price, then one order per line as
// "orderId side quantity [limitPrice]". The side token is B or S; an
// absent price designates a market order.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps r in a tape reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadHeader consumes the header line and returns the initial last
// traded price in cents. A missing or unparseable header is fatal for
// the run: without it there is no reference price for a
// market-to-market execution.
func (r *Reader) ReadHeader() (int64, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", domain.ErrMalformedHeader, err)
		}
		return 0, fmt.Errorf("%w: empty input", domain.ErrMalformedHeader)
	}
	r.line++
	text := strings.TrimSpace(r.scanner.Text())
	price, err := parsePrice(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrMalformedHeader, text)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: negative price %q", domain.ErrMalformedHeader, text)
	}
	return price, nil
}

// Next returns the next order on the tape. It returns io.EOF once the
// tape is exhausted and a *domain.RecordError for a malformed record;
// the caller may skip the record and keep reading. Blank lines are
// skipped silently.
func (r *Reader) Next() (*domain.Order, error) {
	for {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		r.line++
		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		o, err := parseOrder(text)
		if err != nil {
			return nil, &domain.RecordError{Line: r.line, Text: text, Err: err}
		}
		return o, nil
	}
}

func parseOrder(text string) (*domain.Order, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 || len(fields) > 4 {
		return nil, fmt.Errorf("want 3 or 4 fields, got %d", len(fields))
	}

	var side domain.Side
	switch fields[1] {
	case "B":
		side = domain.SideBuy
	case "S":
		side = domain.SideSell
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSide, fields[1])
	}

	qty, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, fields[2])
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}

	price := domain.MarketPrice
	if len(fields) == 4 {
		price, err = parsePrice(fields[3])
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPrice, fields[3])
		}
	}

	return &domain.Order{
		OrderID:           fields[0],
		Side:              side,
		Quantity:          qty,
		RemainingQuantity: qty,
		Price:             price,
	}, nil
}

func parsePrice(text string) (int64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return domain.DollarsToCents(f)
}
