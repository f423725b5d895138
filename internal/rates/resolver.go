package rates

import (
	"errors"

	"github.com/shopspring/decimal"
)

// CrossRateSymbol keys the fixed USD→JPY cross rate attached to every report row.
const CrossRateSymbol = "USDJPY"

// NotAvailable is the placeholder written into cells that have no rate.
const NotAvailable = "N/A"

// ErrUnavailable indicates that no rate exists for a symbol/date pair. It is
// never fatal; callers degrade the affected cell to NotAvailable.
var ErrUnavailable = errors.New("rate unavailable")

// Resolver returns the fiat unit price of a symbol on a trading date
// (formatted YYYY/MM/DD). Implementations must be deterministic: the same
// symbol/date pair always yields the same price or ErrUnavailable.
type Resolver interface {
	Rate(symbol, date string) (decimal.Decimal, error)
}
