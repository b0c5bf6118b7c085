package recommend

import (
	"fmt"

	"equitylens/internal/calculator"
	"equitylens/internal/model"
)

// momentumMinBars is the minimum history length required before the
// moving-average momentum rule produces a score.
const momentumMinBars = 50

// scoreValuation scores the trailing P/E ratio.
// Contribution: +2 / +1 / -1.
func scoreValuation(profile *model.Profile) (int, model.Factor) {
	name := "Valuation (P/E)"
	if profile.TrailingPE == nil {
		return 0, model.Factor{Name: name, Detail: "P/E data not available"}
	}
	pe := *profile.TrailingPE
	switch {
	case pe < 15:
		return 2, model.Factor{Name: name, Detail: "Undervalued (P/E < 15)"}
	case pe < 25:
		return 1, model.Factor{Name: name, Detail: "Fairly valued (P/E 15-25)"}
	default:
		return -1, model.Factor{Name: name, Detail: "Overvalued (P/E > 25)"}
	}
}

// scoreMomentum compares the latest close to the 20- and 50-day moving
// averages. Requires at least momentumMinBars bars.
func scoreMomentum(series model.PriceSeries) (int, model.Factor) {
	name := "Price Momentum"
	if len(series) < momentumMinBars {
		return 0, model.Factor{Name: name, Detail: "Insufficient data for momentum analysis"}
	}
	closes := series.Closes()
	current := closes[len(closes)-1]
	ma20, err20 := calculator.SMA(closes, 20)
	ma50, err50 := calculator.SMA(closes, 50)
	if err20 != nil || err50 != nil {
		return 0, model.Factor{Name: name, Detail: "Insufficient data for momentum analysis"}
	}
	switch {
	case current > ma20 && ma20 > ma50:
		return 2, model.Factor{Name: name, Detail: "Strong uptrend (above 20-day and 50-day MA)"}
	case current > ma20:
		return 1, model.Factor{Name: name, Detail: "Positive momentum (above 20-day MA)"}
	case current < ma50:
		return -1, model.Factor{Name: name, Detail: "Weak momentum (below 50-day MA)"}
	default:
		return 0, model.Factor{Name: name, Detail: "Neutral momentum"}
	}
}

// scoreRSI scores the 14-day RSI: oversold adds, overbought subtracts.
func scoreRSI(series model.PriceSeries) (int, model.Factor) {
	name := "Technical (RSI)"
	rsi, err := calculator.RSI(series.Closes())
	if err != nil {
		return 0, model.Factor{Name: name, Detail: "Insufficient data for RSI"}
	}
	switch {
	case rsi < 30:
		return 1, model.Factor{Name: name, Detail: fmt.Sprintf("Oversold (RSI: %.1f)", rsi)}
	case rsi > 70:
		return -1, model.Factor{Name: name, Detail: fmt.Sprintf("Overbought (RSI: %.1f)", rsi)}
	default:
		return 0, model.Factor{Name: name, Detail: fmt.Sprintf("Neutral (RSI: %.1f)", rsi)}
	}
}

// scoreLeverage scores the debt-to-equity ratio.
func scoreLeverage(profile *model.Profile) (int, model.Factor) {
	name := "Financial Health"
	if profile.DebtToEquity == nil {
		return 0, model.Factor{Name: name, Detail: "Debt information not available"}
	}
	switch de := *profile.DebtToEquity; {
	case de < 0.3:
		return 1, model.Factor{Name: name, Detail: "Strong balance sheet (low debt)"}
	case de > 1.0:
		return -1, model.Factor{Name: name, Detail: "High debt levels"}
	default:
		return 0, model.Factor{Name: name, Detail: "Moderate debt levels"}
	}
}

// scoreDividend rewards a yield over 3%. The yield is a fraction.
func scoreDividend(profile *model.Profile) (int, model.Factor) {
	name := "Dividend"
	if profile.DividendYield == nil {
		return 0, model.Factor{Name: name, Detail: "No dividend or data not available"}
	}
	yield := *profile.DividendYield
	if yield > 0.03 {
		return 1, model.Factor{Name: name, Detail: fmt.Sprintf("Attractive dividend yield (%.1f%%)", yield*100)}
	}
	return 0, model.Factor{Name: name, Detail: fmt.Sprintf("Moderate dividend yield (%.1f%%)", yield*100)}
}

// scoreRevenueGrowth scores year-over-year revenue growth.
func scoreRevenueGrowth(profile *model.Profile) (int, model.Factor) {
	name := "Revenue Growth"
	if profile.RevenueGrowth != nil {
		growth := *profile.RevenueGrowth
		if growth > 0.05 {
			return 1, model.Factor{Name: name, Detail: fmt.Sprintf("Strong revenue growth (%.1f%%)", growth*100)}
		}
		if growth < 0 {
			return -1, model.Factor{Name: name, Detail: fmt.Sprintf("Declining revenue (%.1f%%)", growth*100)}
		}
	}
	return 0, model.Factor{Name: name, Detail: "Moderate or unknown revenue growth"}
}
