// Package valuation computes fair-value estimates from a fundamentals
// snapshot and the cash-flow statement. Every function is pure and
// returns nil instead of failing when its inputs are missing or out of
// domain.
package valuation

import (
	"math"

	"equitylens/internal/model"
)

// DCF model assumptions. Fixed engine constants, not per-call knobs.
const (
	GrowthRate      = 0.05 // annual FCF growth over the projection horizon
	DiscountRate    = 0.10 // WACC approximation
	TerminalGrowth  = 0.02
	ProjectionYears = 5

	// CapexRevenueShare approximates capital expenditure when the
	// provider reports operating cash flow but no free cash flow line.
	CapexRevenueShare = 0.05

	// GrahamMultiplier is the 22.5 constant from Graham's formula
	// (P/E of 15 × P/B of 1.5).
	GrahamMultiplier = 22.5

	// DefaultSectorPE is the benchmark for sectors not in the table.
	DefaultSectorPE = 20
)

// sectorBenchmarkPE holds approximate sector median trailing P/E ratios.
var sectorBenchmarkPE = map[string]float64{
	"Technology":             25,
	"Healthcare":             20,
	"Financial Services":     12,
	"Consumer Cyclical":      18,
	"Consumer Defensive":     22,
	"Energy":                 15,
	"Utilities":              16,
	"Real Estate":            20,
	"Materials":              16,
	"Industrials":            18,
	"Communication Services": 20,
}

// SectorBenchmark returns the benchmark trailing P/E for a sector.
func SectorBenchmark(sector string) float64 {
	if pe, ok := sectorBenchmarkPE[sector]; ok {
		return pe
	}
	return DefaultSectorPE
}

// recentFreeCashFlow extracts the most recent free cash flow from the
// cash-flow statement, approximating it from operating cash flow and a
// revenue-based capex estimate when no FCF line exists.
func recentFreeCashFlow(profile *model.Profile, cashFlow model.StatementTable) (float64, bool) {
	if points, ok := cashFlow.Lookup("Free Cash Flow"); ok && len(points) > 0 {
		return points[len(points)-1].Value, true
	}
	points, ok := cashFlow.Lookup("Operating Cash Flow")
	if !ok || len(points) == 0 {
		return 0, false
	}
	operating := points[len(points)-1].Value
	capex := 0.0
	if profile.TotalRevenue != nil {
		capex = *profile.TotalRevenue * CapexRevenueShare
	}
	return operating - capex, true
}

// DCF computes the discounted-cash-flow fair value per share: five years
// of projected free cash flow plus a Gordon-growth terminal value, both
// discounted to present, divided by shares outstanding. Returns nil when
// free cash flow is unavailable or non-positive, or shares outstanding is
// unknown.
func DCF(profile *model.Profile, cashFlow model.StatementTable) *float64 {
	fcf, ok := recentFreeCashFlow(profile, cashFlow)
	if !ok || fcf <= 0 {
		return nil
	}
	if profile.SharesOutstanding == nil || *profile.SharesOutstanding <= 0 {
		return nil
	}

	var pvFCF float64
	for year := 1; year <= ProjectionYears; year++ {
		projected := fcf * math.Pow(1+GrowthRate, float64(year))
		pvFCF += projected / math.Pow(1+DiscountRate, float64(year))
	}

	terminalFCF := fcf * math.Pow(1+GrowthRate, ProjectionYears) * (1 + TerminalGrowth)
	terminalValue := terminalFCF / (DiscountRate - TerminalGrowth)
	pvTerminal := terminalValue / math.Pow(1+DiscountRate, ProjectionYears)

	enterpriseValue := pvFCF + pvTerminal
	return model.Float(enterpriseValue / *profile.SharesOutstanding)
}

// PERelative computes fair value as trailing EPS times the sector
// benchmark P/E. The current trailing P/E gates availability but does not
// enter the formula. Returns nil when EPS is absent or non-positive, or
// the trailing P/E is absent.
func PERelative(profile *model.Profile) *float64 {
	if profile.TrailingEPS == nil || *profile.TrailingEPS <= 0 {
		return nil
	}
	if profile.TrailingPE == nil {
		return nil
	}
	return model.Float(*profile.TrailingEPS * SectorBenchmark(profile.Sector))
}

// GrahamNumber computes √(22.5 × EPS × book value per share). Returns nil
// when either input is absent or non-positive.
func GrahamNumber(profile *model.Profile) *float64 {
	if profile.TrailingEPS == nil || *profile.TrailingEPS <= 0 {
		return nil
	}
	if profile.BookValue == nil || *profile.BookValue <= 0 {
		return nil
	}
	return model.Float(math.Sqrt(GrahamMultiplier * *profile.TrailingEPS * *profile.BookValue))
}

// PEGRatio computes trailing P/E divided by the earnings growth rate in
// percent. Returns nil when the P/E is absent or growth is absent or
// non-positive.
func PEGRatio(profile *model.Profile) *float64 {
	if profile.TrailingPE == nil {
		return nil
	}
	if profile.EarningsGrowth == nil || *profile.EarningsGrowth <= 0 {
		return nil
	}
	return model.Float(*profile.TrailingPE / (*profile.EarningsGrowth * 100))
}

// All runs the four valuation models over one snapshot.
func All(profile *model.Profile, cashFlow model.StatementTable) model.Valuations {
	return model.Valuations{
		DCF:        DCF(profile, cashFlow),
		PERelative: PERelative(profile),
		Graham:     GrahamNumber(profile),
		PEG:        PEGRatio(profile),
	}
}
