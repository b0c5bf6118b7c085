package economic

import "equitylens/internal/model"

// Impact labels.
const (
	impactPositive = "Positive"
	impactNegative = "Negative"
	impactNeutral  = "Neutral"
)

// sectorSensitivities labels each sector's exposure to the macro factors.
var sectorSensitivities = map[string]model.SectorSensitivity{
	"Consumer Cyclical":  {GDP: "High", Inflation: "High", InterestRate: "Medium", Unemployment: "High"},
	"Technology":         {GDP: "Medium", Inflation: "Medium", InterestRate: "High", Unemployment: "Low"},
	"Financial Services": {GDP: "High", Inflation: "Medium", InterestRate: "High", Unemployment: "High"},
	"Healthcare":         {GDP: "Low", Inflation: "Low", InterestRate: "Low", Unemployment: "Low"},
	"Energy":             {GDP: "High", Inflation: "High", InterestRate: "Medium", Unemployment: "Medium"},
	"Utilities":          {GDP: "Low", Inflation: "Medium", InterestRate: "High", Unemployment: "Low"},
}

var defaultSensitivity = model.SectorSensitivity{
	GDP: "Medium", Inflation: "Medium", InterestRate: "Medium", Unemployment: "Medium",
}

// Sensitivity returns the macro exposure profile for a sector.
func Sensitivity(sector string) model.SectorSensitivity {
	if s, ok := sectorSensitivities[sector]; ok {
		return s
	}
	return defaultSensitivity
}

// rateSensitiveSectors are pressured by high funds rates; financial
// sectors instead benefit from them.
var (
	financialSectors     = map[string]bool{"Financial Services": true, "Banking": true}
	rateSensitiveSectors = map[string]bool{"Real Estate": true, "Utilities": true, "REITs": true}
)

// AnalyzeImpact is a pure assessment of how the macro snapshot bears on a
// stock in the given sector. Missing readings leave their impact Neutral.
func AnalyzeImpact(snapshot model.EconomicSnapshot, sector string) model.EconomicImpact {
	impact := model.EconomicImpact{
		OverallSentiment:   impactNeutral,
		GDPImpact:          impactNeutral,
		InflationImpact:    impactNeutral,
		InterestRateImpact: impactNeutral,
		SectorImpact:       impactNeutral,
		Sensitivity:        Sensitivity(sector),
		Snapshot:           snapshot,
	}

	if g := snapshot.GDPGrowth; g != nil {
		if *g > 2 {
			impact.GDPImpact = impactPositive
			impact.Recommendations = append(impact.Recommendations,
				"Strong GDP growth supports consumer spending and business investment")
		} else if *g < 0 {
			impact.GDPImpact = impactNegative
			impact.Recommendations = append(impact.Recommendations,
				"GDP contraction may reduce corporate earnings")
		}
	}

	if inf := snapshot.InflationRate; inf != nil {
		if *inf > 4 {
			impact.InflationImpact = impactNegative
			impact.Recommendations = append(impact.Recommendations,
				"High inflation may pressure profit margins and consumer spending")
		} else if *inf >= 2 && *inf <= 3 {
			impact.InflationImpact = impactPositive
			impact.Recommendations = append(impact.Recommendations,
				"Moderate inflation indicates healthy economic growth")
		}
	}

	if rate := snapshot.FedFundsRate; rate != nil {
		switch {
		case financialSectors[sector] && *rate > 3:
			impact.InterestRateImpact = impactPositive
			impact.SectorImpact = impactPositive
			impact.Recommendations = append(impact.Recommendations,
				"Higher interest rates benefit financial sector margins")
		case rateSensitiveSectors[sector] && *rate > 4:
			impact.InterestRateImpact = impactNegative
			impact.SectorImpact = impactNegative
			impact.Recommendations = append(impact.Recommendations,
				"High interest rates may pressure rate-sensitive sectors")
		case sector == "Technology" && *rate > 4:
			impact.InterestRateImpact = impactNegative
			impact.Recommendations = append(impact.Recommendations,
				"Higher rates may reduce tech valuations and growth investments")
		}
	}

	var positive, negative int
	for _, label := range []string{impact.GDPImpact, impact.InflationImpact, impact.InterestRateImpact} {
		switch label {
		case impactPositive:
			positive++
		case impactNegative:
			negative++
		}
	}
	if positive > negative {
		impact.OverallSentiment = impactPositive
	} else if negative > positive {
		impact.OverallSentiment = impactNegative
	}
	return impact
}
