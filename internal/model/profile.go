package model

// Profile is a read-only quote and fundamentals snapshot for one symbol.
// Providers may omit any numeric field; absence is represented as a nil
// pointer and is distinct from zero.
type Profile struct {
	Symbol string
	Name   string
	Sector string

	CurrentPrice      *float64
	PreviousClose     *float64
	MarketCap         *float64
	TrailingPE        *float64
	DividendYield     *float64 // fraction, 0.03 = 3%
	TrailingEPS       *float64
	BookValue         *float64 // per share
	SharesOutstanding *float64
	DebtToEquity      *float64
	ProfitMargin      *float64 // fraction
	RevenueGrowth     *float64 // fraction, year over year
	EarningsGrowth    *float64 // fraction, year over year
	TotalRevenue      *float64

	// Display-only extras.
	Volume           *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	Summary          string
}

// Float returns a pointer to v, for building optional fields.
func Float(v float64) *float64 { return &v }
