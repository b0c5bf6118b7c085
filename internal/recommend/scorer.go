// Package recommend combines valuation, momentum, technical, leverage,
// dividend, and growth signals into a single BUY/HOLD/SELL call with
// itemized supporting factors and a volatility-based risk label.
package recommend

import (
	"fmt"

	"github.com/phuslu/log"

	"equitylens/internal/calculator"
	"equitylens/internal/model"
)

// verdicts maps score thresholds to actions, highest first.
var verdicts = []struct {
	MinScore int
	Action   string
	Reason   string
}{
	{4, "STRONG BUY", "Multiple positive indicators suggest strong upside potential"},
	{2, "BUY", "Overall positive outlook with good risk-reward ratio"},
	{0, "HOLD", "Mixed signals suggest maintaining current position"},
	{-2, "WEAK SELL", "Some concerning factors but not necessarily time to exit"},
}

// sellVerdict is the floor for scores below every threshold.
var sellVerdict = struct {
	Action string
	Reason string
}{"SELL", "Multiple negative indicators suggest significant downside risk"}

// mapVerdict maps a total score to its action and fixed justification.
func mapVerdict(score int) (string, string) {
	for _, v := range verdicts {
		if score >= v.MinScore {
			return v.Action, v.Reason
		}
	}
	return sellVerdict.Action, sellVerdict.Reason
}

// riskLabel classifies annualized volatility into High/Moderate/Low.
func riskLabel(volatility float64) string {
	switch {
	case volatility > 0.4:
		return "High"
	case volatility > 0.25:
		return "Moderate"
	default:
		return "Low"
	}
}

// Score evaluates all six rules in fixed order and maps the total to a
// verdict. An unexpected panic inside any rule degrades the result to a
// neutral HOLD rather than propagating.
func Score(profile *model.Profile, history model.PriceSeries) (rec model.Recommendation) {
	symbol := ""
	if profile != nil {
		symbol = profile.Symbol
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("symbol", symbol).Msgf("recommendation scoring failed: %v", r)
			rec = model.Recommendation{
				Action:  "HOLD",
				Reason:  fmt.Sprintf("Unable to generate recommendation due to data limitations: %v", r),
				Score:   0,
				Factors: []model.Factor{{Name: "Error", Detail: "Insufficient data for analysis"}},
			}
		}
	}()

	score := 0
	var factors []model.Factor
	for _, rule := range []func() (int, model.Factor){
		func() (int, model.Factor) { return scoreValuation(profile) },
		func() (int, model.Factor) { return scoreMomentum(history) },
		func() (int, model.Factor) { return scoreRSI(history) },
		func() (int, model.Factor) { return scoreLeverage(profile) },
		func() (int, model.Factor) { return scoreDividend(profile) },
		func() (int, model.Factor) { return scoreRevenueGrowth(profile) },
	} {
		delta, factor := rule()
		score += delta
		factors = append(factors, factor)
	}

	action, reason := mapVerdict(score)

	rec = model.Recommendation{
		Action:  action,
		Reason:  reason,
		Score:   score,
		Factors: factors,
	}
	if vol, err := calculator.AnnualizedVolatility(history.Closes()); err == nil {
		rec.Volatility = model.Float(vol)
		rec.RiskLabel = riskLabel(vol)
	} else {
		rec.RiskLabel = "Low"
	}
	return rec
}
