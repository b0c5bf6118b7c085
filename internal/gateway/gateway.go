package gateway

import (
	"context"
	"errors"

	"equitylens/internal/model"
)

var (
	// ErrSymbolNotFound means the provider does not know the symbol.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrDataUnavailable means the provider knows the symbol but has no
	// data for the requested resource.
	ErrDataUnavailable = errors.New("data unavailable")
)

// Period is a fixed history window accepted by providers.
type Period string

const (
	Period1Month  Period = "1mo"
	Period3Months Period = "3mo"
	Period6Months Period = "6mo"
	Period1Year   Period = "1y"
	Period2Years  Period = "2y"
	Period5Years  Period = "5y"
)

// Periods lists the accepted history windows in display order.
var Periods = []Period{Period1Month, Period3Months, Period6Months, Period1Year, Period2Years, Period5Years}

// ParsePeriod maps a period string to the enumerated set, defaulting to
// one year for empty or unrecognized input.
func ParsePeriod(s string) Period {
	for _, p := range Periods {
		if string(p) == s {
			return p
		}
	}
	return Period1Year
}

// MarketDataGateway supplies quote snapshots, price history, and financial
// statements for a symbol. All network I/O lives behind this interface;
// the analysis packages operate on the returned structures only.
type MarketDataGateway interface {
	// Profile fetches the quote and fundamentals snapshot.
	// Returns ErrSymbolNotFound when the symbol is unresolvable.
	Profile(ctx context.Context, symbol string) (*model.Profile, error)

	// History fetches the daily price series for the period.
	History(ctx context.Context, symbol string, period Period) (model.PriceSeries, error)

	// Statements fetches the annual financial statements. The returned
	// set may be empty; that is not an error.
	Statements(ctx context.Context, symbol string) (*model.StatementSet, error)

	// ProbeValid cheaply checks whether the provider knows the symbol.
	ProbeValid(ctx context.Context, symbol string) bool

	Name() string
}
