package model

import "time"

// Factor is one named contribution in a recommendation scorecard.
type Factor struct {
	Name   string
	Detail string
}

// Recommendation is the final BUY/HOLD/SELL output of the recommendation
// scorer. Factors keep rule-application order.
type Recommendation struct {
	Action     string
	Reason     string
	Score      int
	Factors    []Factor
	RiskLabel  string
	Volatility *float64 // annualized, fraction
}

// Valuations holds the four fair-value estimates; nil means the inputs
// required for that model were missing or out of domain.
type Valuations struct {
	DCF        *float64
	PERelative *float64
	Graham     *float64
	PEG        *float64
}

// EconomicSnapshot holds the latest macroeconomic readings. Every field is
// optional; the FRED gateway may be unconfigured or a series unavailable.
type EconomicSnapshot struct {
	GDPGrowth          *float64 // YoY, percent
	GDPPerCapitaGrowth *float64
	InflationRate      *float64
	UnemploymentRate   *float64
	FedFundsRate       *float64
	Treasury10Y        *float64
	VIX                *float64
	SP500MonthlyReturn *float64
	MarketSentiment    string
}

// SectorSensitivity labels how exposed a sector is to each macro factor.
type SectorSensitivity struct {
	GDP          string
	Inflation    string
	InterestRate string
	Unemployment string
}

// EconomicImpact is the macro assessment for one stock.
type EconomicImpact struct {
	OverallSentiment   string
	GDPImpact          string
	InflationImpact    string
	InterestRateImpact string
	SectorImpact       string
	Recommendations    []string
	Sensitivity        SectorSensitivity
	Snapshot           EconomicSnapshot
}

// Report bundles everything a single research query produced. It is the
// complete interface between the core and any presentation layer; no
// formatting lives here.
type Report struct {
	Query      string
	Symbol     string
	Profile    *Profile
	History    PriceSeries
	Statements *StatementSet

	Indicators         IndicatorSnapshot
	Valuations         Valuations
	Recommendation     Recommendation
	Compounding        ScoreCard
	CompoundingSummary string

	Economic *EconomicImpact // nil when macro analysis is not configured

	GeneratedAt time.Time
}
