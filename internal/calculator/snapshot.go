// Package calculator derives technical indicators from price series.
// Every function is pure; insufficient data is reported, never guessed.
package calculator

import "equitylens/internal/model"

// Snapshot computes the latest MA20, MA50, RSI(14), and annualized
// volatility from a price series. Indicators the series is too short for
// are left nil.
func Snapshot(series model.PriceSeries) model.IndicatorSnapshot {
	var snap model.IndicatorSnapshot
	if last, ok := series.Last(); ok {
		snap.CurrentPrice = model.Float(last.Close)
	}

	closes := series.Closes()
	if ma, err := SMA(closes, 20); err == nil {
		snap.MA20 = model.Float(ma)
	}
	if ma, err := SMA(closes, 50); err == nil {
		snap.MA50 = model.Float(ma)
	}
	if rsi, err := RSI(closes); err == nil {
		snap.RSI14 = model.Float(rsi)
	}
	if vol, err := AnnualizedVolatility(closes); err == nil {
		snap.Volatility = model.Float(vol)
	}
	return snap
}
