package model

// IndicatorSnapshot holds the latest technical indicator values derived
// from a price series. Each value is nil when the series is too short to
// compute it.
type IndicatorSnapshot struct {
	CurrentPrice *float64
	MA20         *float64
	MA50         *float64
	RSI14        *float64
	Volatility   *float64 // annualized, fraction
}
