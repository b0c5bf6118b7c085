package valuation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equitylens/internal/model"
)

func cashFlowTable(line string, value float64) model.StatementTable {
	return model.StatementTable{Items: []model.LineItem{
		{Name: line, Points: []model.LinePoint{
			{Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), Value: value},
		}},
	}}
}

func TestDCF(t *testing.T) {
	profile := &model.Profile{
		SharesOutstanding: model.Float(1e9),
	}
	table := cashFlowTable("Free Cash Flow", 1e10)

	got := DCF(profile, table)
	require.NotNil(t, got)

	// Recompute with the published assumptions.
	fcf := 1e10
	var pv float64
	for y := 1; y <= ProjectionYears; y++ {
		pv += fcf * math.Pow(1.05, float64(y)) / math.Pow(1.10, float64(y))
	}
	terminal := fcf * math.Pow(1.05, ProjectionYears) * 1.02 / (0.10 - 0.02)
	pv += terminal / math.Pow(1.10, ProjectionYears)
	want := pv / 1e9

	assert.InDelta(t, want, *got, 1e-6)
}

func TestDCFMonotonicInFCF(t *testing.T) {
	profile := &model.Profile{SharesOutstanding: model.Float(1e9)}
	low := DCF(profile, cashFlowTable("Free Cash Flow", 1e9))
	high := DCF(profile, cashFlowTable("Free Cash Flow", 2e9))
	require.NotNil(t, low)
	require.NotNil(t, high)
	assert.Greater(t, *high, *low)
}

func TestDCFOperatingCashFlowFallback(t *testing.T) {
	profile := &model.Profile{
		SharesOutstanding: model.Float(1e6),
		TotalRevenue:      model.Float(2e9),
	}
	table := cashFlowTable("Operating Cash Flow", 1e9)

	got := DCF(profile, table)
	require.NotNil(t, got)

	// FCF = OCF - 5% of revenue = 1e9 - 1e8 = 9e8.
	direct := DCF(profile, cashFlowTable("Free Cash Flow", 9e8))
	require.NotNil(t, direct)
	assert.InDelta(t, *direct, *got, 1e-6)
}

func TestDCFOperatingCashFlowFallbackNoRevenue(t *testing.T) {
	// Without revenue the capex estimate degrades to zero, so the
	// approximated FCF is the raw operating cash flow.
	profile := &model.Profile{SharesOutstanding: model.Float(1e6)}
	got := DCF(profile, cashFlowTable("Operating Cash Flow", 1e9))
	require.NotNil(t, got)

	direct := DCF(profile, cashFlowTable("Free Cash Flow", 1e9))
	require.NotNil(t, direct)
	assert.InDelta(t, *direct, *got, 1e-6)
}

func TestDCFUnavailable(t *testing.T) {
	shares := &model.Profile{SharesOutstanding: model.Float(1e9)}

	assert.Nil(t, DCF(shares, model.StatementTable{}), "no cash flow lines")
	assert.Nil(t, DCF(shares, cashFlowTable("Free Cash Flow", -5e8)), "negative FCF")
	assert.Nil(t, DCF(&model.Profile{}, cashFlowTable("Free Cash Flow", 1e9)), "missing shares")
}

func TestPERelative(t *testing.T) {
	profile := &model.Profile{
		Sector:      "Technology",
		TrailingEPS: model.Float(6),
		TrailingPE:  model.Float(30),
	}
	got := PERelative(profile)
	require.NotNil(t, got)
	assert.InDelta(t, 150, *got, 1e-9) // 6 × Technology benchmark 25

	profile.Sector = "Unlisted Sector"
	got = PERelative(profile)
	require.NotNil(t, got)
	assert.InDelta(t, 120, *got, 1e-9) // default benchmark 20

	assert.Nil(t, PERelative(&model.Profile{TrailingEPS: model.Float(6)}), "no trailing P/E")
	assert.Nil(t, PERelative(&model.Profile{TrailingEPS: model.Float(-1), TrailingPE: model.Float(10)}), "negative EPS")
}

func TestGrahamNumber(t *testing.T) {
	profile := &model.Profile{
		TrailingEPS: model.Float(4),
		BookValue:   model.Float(10),
	}
	got := GrahamNumber(profile)
	require.NotNil(t, got)
	assert.InDelta(t, math.Sqrt(22.5*4*10), *got, 1e-9)

	assert.Nil(t, GrahamNumber(&model.Profile{TrailingEPS: model.Float(4)}))
	assert.Nil(t, GrahamNumber(&model.Profile{TrailingEPS: model.Float(4), BookValue: model.Float(-1)}))
}

func TestPEGRatio(t *testing.T) {
	profile := &model.Profile{
		TrailingPE:     model.Float(20),
		EarningsGrowth: model.Float(0.10),
	}
	got := PEGRatio(profile)
	require.NotNil(t, got)
	assert.InDelta(t, 2.0, *got, 1e-9)

	assert.Nil(t, PEGRatio(&model.Profile{TrailingPE: model.Float(20)}), "missing growth")
	assert.Nil(t, PEGRatio(&model.Profile{TrailingPE: model.Float(20), EarningsGrowth: model.Float(-0.05)}), "negative growth")
	assert.Nil(t, PEGRatio(&model.Profile{TrailingPE: model.Float(20), EarningsGrowth: model.Float(0)}), "zero growth")
	assert.Nil(t, PEGRatio(&model.Profile{EarningsGrowth: model.Float(0.10)}), "missing P/E")
}

func TestAll(t *testing.T) {
	profile := &model.Profile{
		Sector:            "Healthcare",
		TrailingEPS:       model.Float(5),
		TrailingPE:        model.Float(18),
		BookValue:         model.Float(20),
		EarningsGrowth:    model.Float(0.08),
		SharesOutstanding: model.Float(1e8),
	}
	vals := All(profile, cashFlowTable("Free Cash Flow", 5e8))
	assert.NotNil(t, vals.DCF)
	assert.NotNil(t, vals.PERelative)
	assert.NotNil(t, vals.Graham)
	assert.NotNil(t, vals.PEG)
}
