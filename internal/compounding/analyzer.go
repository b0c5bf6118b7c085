// Package compounding judges whether a company reinvests profits
// effectively, by scoring multi-year revenue, profit, ROE, and
// retained-earnings trends together with leverage and margins.
package compounding

import (
	"fmt"

	"equitylens/internal/model"
)

// Scoring thresholds for a compelling compounding profile.
const (
	// compoundingThreshold is the minimum score for a Yes verdict.
	compoundingThreshold = 5

	// minTrendPoints is the minimum number of annual data points before
	// a growth trend is computed.
	minTrendPoints = 3

	// minROEPeriods is the minimum number of matching income/equity
	// periods for the ROE average.
	minROEPeriods = 2
)

// Line-item aliases, tried in order, first present wins.
var (
	netIncomeAliases = []string{
		"Net Income",
		"Net Income Common Stockholders",
		"Net Income Applicable To Common Shares",
	}
	equityAliases = []string{
		"Stockholders Equity",
		"Total Stockholder Equity",
		"Total Equity",
	}
	retainedEarningsAliases = []string{
		"Retained Earnings",
		"Accumulated Retained Earnings",
	}
)

const insufficientDataWarning = "Insufficient financial data for compounding analysis"

// meanGrowth computes the mean period-over-period fractional change of a
// chronological series. Returns false with fewer than minTrendPoints
// points or when a zero value would make a ratio undefined.
func meanGrowth(points []model.LinePoint) (float64, bool) {
	if len(points) < minTrendPoints {
		return 0, false
	}
	var sum float64
	var n int
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Value
		if prev == 0 {
			continue
		}
		sum += (points[i].Value - prev) / prev
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// averageROE computes net income over equity per period across the dates
// both series report, skipping periods with non-positive equity. Requires
// at least minROEPeriods common dates.
func averageROE(netIncome, equity []model.LinePoint) (float64, bool) {
	byDate := make(map[int64]float64, len(netIncome))
	for _, p := range netIncome {
		byDate[p.Date.Unix()] = p.Value
	}
	var common int
	var sum float64
	var n int
	for _, e := range equity {
		income, ok := byDate[e.Date.Unix()]
		if !ok {
			continue
		}
		common++
		if e.Value > 0 {
			sum += income / e.Value * 100
			n++
		}
	}
	if common < minROEPeriods || n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Analyze scores the company's compounding profile out of 10. With no
// financial statement data at all the verdict is Unknown rather than No.
func Analyze(profile *model.Profile, statements *model.StatementSet) model.ScoreCard {
	card := model.ScoreCard{
		Verdict: model.No,
		Metrics: map[string]*float64{
			"revenue_growth":           nil,
			"profit_growth":            nil,
			"roe":                      nil,
			"retained_earnings_growth": nil,
			"debt_to_equity":           nil,
			"profit_margin":            nil,
		},
	}
	if statements == nil || statements.Empty() {
		card.Verdict = model.Unknown
		card.Warnings = append(card.Warnings, insufficientDataWarning)
		return card
	}

	// 1. Revenue growth trend.
	if revenues, ok := statements.Income.Lookup("Total Revenue"); ok {
		if growth, ok := meanGrowth(revenues); ok {
			card.Metrics["revenue_growth"] = model.Float(growth * 100)
			switch {
			case growth > 0.05:
				card.Score += 2
				card.Factors = append(card.Factors, fmt.Sprintf("Strong revenue growth (%.1f%% avg)", growth*100))
			case growth > 0:
				card.Score++
				card.Factors = append(card.Factors, "Positive revenue growth")
			default:
				card.Warnings = append(card.Warnings, "Declining revenue trend")
			}
		}
	}

	// 2. Net income growth trend.
	netIncome, hasIncome := statements.Income.FirstOf(netIncomeAliases...)
	if hasIncome {
		if growth, ok := meanGrowth(netIncome); ok {
			card.Metrics["profit_growth"] = model.Float(growth * 100)
			switch {
			case growth > 0.10:
				card.Score += 3
				card.Factors = append(card.Factors, fmt.Sprintf("Excellent profit growth (%.1f%% avg)", growth*100))
			case growth > 0.05:
				card.Score += 2
				card.Factors = append(card.Factors, "Good profit growth")
			case growth > 0:
				card.Score++
				card.Factors = append(card.Factors, "Moderate profit growth")
			default:
				card.Warnings = append(card.Warnings, "Declining profitability")
			}
		}
	}

	// 3. Average return on equity.
	if equity, ok := statements.BalanceSheet.FirstOf(equityAliases...); ok && hasIncome {
		if roe, ok := averageROE(netIncome, equity); ok {
			card.Metrics["roe"] = model.Float(roe)
			switch {
			case roe > 15:
				card.Score += 2
				card.Factors = append(card.Factors, fmt.Sprintf("High ROE (%.1f%%)", roe))
			case roe > 10:
				card.Score++
				card.Factors = append(card.Factors, "Good ROE")
			case roe < 5:
				card.Warnings = append(card.Warnings, "Low return on equity")
			}
		}
	}

	// 4. Retained earnings growth.
	if retained, ok := statements.BalanceSheet.FirstOf(retainedEarningsAliases...); ok {
		if growth, ok := meanGrowth(retained); ok {
			card.Metrics["retained_earnings_growth"] = model.Float(growth * 100)
			if growth > 0.05 {
				card.Score++
				card.Factors = append(card.Factors, "Growing retained earnings")
			} else if growth < 0 {
				card.Warnings = append(card.Warnings, "Declining retained earnings")
			}
		}
	}

	// 5. Debt management.
	if profile.DebtToEquity != nil {
		card.Metrics["debt_to_equity"] = profile.DebtToEquity
		if *profile.DebtToEquity < 0.3 {
			card.Score++
			card.Factors = append(card.Factors, "Conservative debt management")
		} else if *profile.DebtToEquity > 1.0 {
			card.Warnings = append(card.Warnings, "High debt levels may limit growth")
		}
	}

	// 6. Margins.
	if profile.ProfitMargin != nil {
		card.Metrics["profit_margin"] = model.Float(*profile.ProfitMargin * 100)
		if *profile.ProfitMargin > 0.15 {
			card.Score++
			card.Factors = append(card.Factors, "High profit margins")
		}
	}

	if card.Score >= compoundingThreshold {
		card.Verdict = model.Yes
	}
	return card
}

// Summarize derives the one-line recommendation from a score card.
func Summarize(card model.ScoreCard) string {
	switch {
	case card.Verdict == model.Unknown:
		return "Unable to determine compounding quality due to insufficient data"
	case card.Verdict == model.Yes:
		return "Strong compounding characteristics - company effectively reinvests profits for growth"
	case card.Score >= 3:
		return "Moderate compounding potential - some positive indicators but room for improvement"
	default:
		return "Weak compounding profile - limited evidence of effective profit reinvestment"
	}
}
